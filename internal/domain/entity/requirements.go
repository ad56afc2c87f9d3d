package entity

import (
	"fmt"
	"time"
)

// Checker collects violations for one entity. Zero value is ready to use.
type Checker struct {
	kind       string
	violations []string
}

func NewChecker(kind string) *Checker { return &Checker{kind: kind} }

func (c *Checker) missing(field string) {
	c.violations = append(c.violations, "missing required field "+field)
}

// String flags field when v is empty.
func (c *Checker) String(field, v string) {
	if v == "" {
		c.missing(field)
	}
}

// Time flags field when v is nil or zero.
func (c *Checker) Time(field string, v *time.Time) {
	if v == nil || v.IsZero() {
		c.missing(field)
	}
}

// Date flags field when v is the zero time.
func (c *Checker) Date(field string, v time.Time) {
	if v.IsZero() {
		c.missing(field)
	}
}

// Int flags field when v is zero.
func (c *Checker) Int(field string, v int64) {
	if v == 0 {
		c.missing(field)
	}
}

// List flags field when the list is empty.
func (c *Checker) List(field string, n int) {
	if n == 0 {
		c.missing(field)
	}
}

// Addf records a free-form violation.
func (c *Checker) Addf(format string, args ...any) {
	c.violations = append(c.violations, fmt.Sprintf(format, args...))
}

// Err returns nil when nothing was flagged, otherwise an *InvalidObjectError.
func (c *Checker) Err() error {
	if len(c.violations) == 0 {
		return nil
	}
	out := make([]string, len(c.violations))
	copy(out, c.violations)
	return &InvalidObjectError{Kind: c.kind, Violations: out}
}
