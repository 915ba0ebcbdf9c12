package validation

import (
	"errors"
	"sort"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Err returns the map as an error, or nil when there is nothing to report.
func (v Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return &Error{Violations: v}
}

// Error carries field violations across the service boundary.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for field, msg := range e.Violations {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsError unwraps a validation error if err carries one.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

// AtMostFloat flags field when val exceeds the ceiling; the message names the
// ceiling field (e.g. "exceeds_amount").
func AtMostFloat(field, ceilingField string, val, ceiling float64, v Violations) {
	if val > ceiling {
		v[field] = "exceeds_" + ceilingField
	}
}

// OneOf flags a value outside the allowed set.
func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "invalid_value"
}
