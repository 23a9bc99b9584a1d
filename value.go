package xmldom

import (
	"strconv"
	"strings"
)

// Value returns the text value of e and whether one is present. An
// element that never received character data has no value, which is
// distinct from an empty string.
func (e *Element) Value() (string, bool) {
	if e.value == nil {
		return "", false
	}
	return *e.value, true
}

// SetValue sets the text value of e. SetValue("") records an explicit
// empty string; use ClearValue to remove the value entirely.
func (e *Element) SetValue(v string) {
	e.value = &v
}

// ClearValue removes the text value of e.
func (e *Element) ClearValue() {
	e.value = nil
}

// StringValue returns the text value, or the empty string when absent.
func (e *Element) StringValue() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

// BoolValue returns true iff the text value equals "true" ignoring
// case, or parses as the integer 1. It never fails.
func (e *Element) BoolValue() bool {
	s := e.StringValue()
	if strings.EqualFold(s, "true") {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n == 1
}

// IntValue returns the text value parsed as an integer, 0 on failure.
func (e *Element) IntValue() int {
	n, err := strconv.Atoi(e.StringValue())
	if err != nil {
		return 0
	}
	return n
}

// FloatValue returns the text value parsed as a float, 0.0 on failure.
func (e *Element) FloatValue() float64 {
	f, err := strconv.ParseFloat(e.StringValue(), 64)
	if err != nil {
		return 0
	}
	return f
}
