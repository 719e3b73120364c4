// Package validate collects input errors that map to HTTP 400.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a client input error.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func Errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is, or wraps, a validation error.
func Is(err error) bool {
	var v *Error
	return errors.As(err, &v)
}

// Checker accumulates failures across a sequence of checks.
type Checker struct {
	failures []string
}

func (c *Checker) fail(format string, args ...any) {
	c.failures = append(c.failures, fmt.Sprintf(format, args...))
}

func (c *Checker) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.fail("%s is required", field)
	}
}

// RequiredPtr fails when value is nil or blank.
func (c *Checker) RequiredPtr(field string, value *string) {
	if value == nil {
		c.fail("%s is required", field)
		return
	}
	c.Required(field, *value)
}

// Present fails when a required non-string field was not sent.
func (c *Checker) Present(field string, present bool) {
	if !present {
		c.fail("%s is required", field)
	}
}

func (c *Checker) NonNegative(field string, v float64) {
	if v < 0 {
		c.fail("%s must not be negative", field)
	}
}

func (c *Checker) Positive(field string, v float64) {
	if v <= 0 {
		c.fail("%s must be greater than zero", field)
	}
}

func (c *Checker) Range(field string, v, min, max float64) {
	if v < min || v > max {
		c.fail("%s must be between %g and %g", field, min, max)
	}
}

// OneOf fails when valid is false, naming the accepted values.
func (c *Checker) OneOf(field, value string, valid bool, accepted []string) {
	if !valid {
		c.fail("%s %q is not one of %s", field, value, strings.Join(accepted, ", "))
	}
}

func (c *Checker) Check(ok bool, format string, args ...any) {
	if !ok {
		c.fail(format, args...)
	}
}

// Err returns nil when every check passed.
func (c *Checker) Err() error {
	if len(c.failures) == 0 {
		return nil
	}
	return &Error{Message: strings.Join(c.failures, "; ")}
}

// Names converts a typed enum set to strings for error messages.
func Names[T ~string](set []T) []string {
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = string(v)
	}
	return out
}
