package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// TextLines accepts either a newline separated block or a JSON array of
// strings. Arrays are joined with newlines.
type TextLines struct {
	Text string
}

func (t *TextLines) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		t.Text = ""
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		lines := make([]string, 0, len(items))
		for _, item := range items {
			switch v := item.(type) {
			case nil:
				continue
			case string:
				lines = append(lines, v)
			default:
				lines = append(lines, fmt.Sprint(v))
			}
		}
		t.Text = strings.Join(lines, "\n")
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	t.Text = text
	return nil
}

// LooseInt accepts a JSON number, a numeric string, an empty string or null.
// Anything else marks the value invalid rather than failing the decode, so
// handlers can report which field was wrong.
type LooseInt struct {
	Value   *int
	Invalid bool
}

func (v *LooseInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	v.Value = nil
	v.Invalid = false

	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}
		parsed, err := strconv.Atoi(text)
		if err != nil {
			v.Invalid = true
			return nil
		}
		v.Value = &parsed
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err != nil {
		v.Invalid = true
		return nil
	}
	if number != math.Trunc(number) || number > math.MaxInt32 || number < math.MinInt32 {
		v.Invalid = true
		return nil
	}
	parsed := int(number)
	v.Value = &parsed
	return nil
}

// LooseBool accepts booleans, "true"/"false" strings and numbers.
type LooseBool bool

func (b *LooseBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*b = false
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*b = LooseBool(v)
	case string:
		*b = LooseBool(strings.EqualFold(strings.TrimSpace(v), "true"))
	case float64:
		*b = LooseBool(v != 0)
	default:
		return fmt.Errorf("cannot use %T as boolean", raw)
	}
	return nil
}
