package validation

import "errors"

// Error is a client-facing input problem. Message is safe to return verbatim.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func New(field, message string) error {
	return &Error{Field: field, Message: message}
}

// From unwraps err into a validation error, if it is one.
func From(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
