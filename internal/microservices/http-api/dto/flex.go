package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"animehub/internal/validate"
)

func init() {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if o, ok := field.Interface().(OptionalInt); ok && o.Set {
			return o.Value
		}
		return nil
	}, OptionalInt{})
}

// OptionalInt is an integer field that clients may send as a JSON number,
// a numeric string, an empty string or null. Empty string and null leave it
// unset. Anything else that is not an integer fails decoding.
type OptionalInt struct {
	Value int
	Set   bool
}

// IntOf returns a set OptionalInt.
func IntOf(v int) OptionalInt {
	return OptionalInt{Value: v, Set: true}
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	*o = OptionalInt{}
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
		if text == "" {
			return nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("%q is not a valid integer", text)
	}
	o.Value = int(f)
	o.Set = true
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}

// Ptr returns nil when unset.
func (o OptionalInt) Ptr() *int {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// ParseOptionalInt parses a path or query parameter.
func ParseOptionalInt(s string) (OptionalInt, error) {
	var o OptionalInt
	err := o.UnmarshalJSON([]byte(strconv.Quote(s)))
	return o, err
}

// FlexID is an opaque identifier that may arrive as a JSON string or number.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		*f = ""
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("id must be a string or number")
	}
	*f = FlexID(n.String())
	return nil
}
