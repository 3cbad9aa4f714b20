// Package optional models fields that may be absent from a request, as
// opposed to present with a zero or null value.
package optional

import "encoding/json"

// Value holds a T and whether it was supplied at all.
type Value[T any] struct {
	value T
	set   bool
}

func Of[T any](value T) Value[T] {
	return Value[T]{value: value, set: true}
}

func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

func (v Value[T]) IsSet() bool {
	return v.set
}

// UnmarshalJSON marks the value as supplied. JSON null leaves the zero value
// of T in place but still counts as supplied.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	v.value = decoded
	v.set = true
	return nil
}

// Map converts a supplied value with fn and keeps absent values absent.
func Map[T, U any](v Value[T], fn func(T) U) Value[U] {
	if !v.set {
		return Value[U]{}
	}
	return Of(fn(v.value))
}
