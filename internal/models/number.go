package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a numeric input field that also accepts numeric strings such as
// "2" or " 15.5 ", which is what HTML form inputs submit. A value that is not
// a number does not fail decoding; it is flagged so validation can report it
// per field.
type Number struct {
	Value   float64
	Blank   bool
	Invalid bool
}

// NumberOf returns a valid Number holding v.
func NumberOf(v float64) *Number {
	return &Number{Value: v}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.Invalid = true
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			n.Blank = true
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			n.Invalid = true
			return nil
		}
		n.Value = v
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		n.Invalid = true
		return nil
	}
	n.Value = v
	return nil
}
