package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	timestampType      = reflect.TypeOf(Timestamp{})
	flexibleNumberType = reflect.TypeOf(FlexibleNumber(0))
	textOrNumberType   = reflect.TypeOf(TextOrNumber(""))
	flagType           = reflect.TypeOf(Flag(false))
)

var null = []byte("null")

// Fallback layouts tried after RFC 3339, in order. Values without a zone
// are read as UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp accepts ISO-8601 and the backend's older date encodings.
type Timestamp struct {
	time.Time
}

func ParseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", value)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &json.UnmarshalTypeError{Value: describeJSON(data), Type: timestampType}
	}

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: strconv.Quote(raw), Type: timestampType}
	}
	t.Time = parsed
	return nil
}

// TimePtr returns nil for an absent timestamp.
func (t *Timestamp) TimePtr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// FlexibleNumber is a JSON number or a string holding one.
type FlexibleNumber float64

func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if !bytes.Equal(data, null) && json.Unmarshal(data, &f) == nil {
		*n = FlexibleNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			*n = FlexibleNumber(parsed)
			return nil
		}
	}

	return &json.UnmarshalTypeError{Value: describeJSON(data), Type: flexibleNumberType}
}

func (n FlexibleNumber) Float64() float64 {
	return float64(n)
}

func (n FlexibleNumber) Int() int {
	return int(math.Round(float64(n)))
}

// TextOrNumber is a JSON string or number kept as text. Numbers are
// formatted without decimals.
type TextOrNumber string

func (t *TextOrNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TextOrNumber(s)
		return nil
	}

	var f float64
	if !bytes.Equal(data, null) && json.Unmarshal(data, &f) == nil {
		*t = TextOrNumber(strconv.FormatFloat(f, 'f', 0, 64))
		return nil
	}

	return &json.UnmarshalTypeError{Value: describeJSON(data), Type: textOrNumberType}
}

func (t *TextOrNumber) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

// Flag is a win/loss marker sent either as a boolean or as 1/0.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}

	var n float64
	if !bytes.Equal(data, null) && json.Unmarshal(data, &n) == nil {
		*f = n != 0
		return nil
	}

	return &json.UnmarshalTypeError{Value: describeJSON(data), Type: flagType}
}

func describeJSON(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	switch firstByte(trimmed) {
	case '"':
		return "string " + string(trimmed)
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number " + string(trimmed)
	}
}
