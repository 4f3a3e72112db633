// Package validate builds value objects from raw input and combines many
// independent results into one, collecting every failure instead of
// stopping at the first.
package validate

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// StringCheck accumulates the rule violations of a single string field.
// Use String to start a chain and Into to finish it.
//
// Once a Required check fails, later rules are skipped: a blank value is
// reported once as REQUIRED rather than also as too short or malformed.
type StringCheck struct {
	field string
	value string
	errs  []result.Error
	blank bool
}

// String starts a rule chain for field. Surrounding whitespace is trimmed
// before any rule runs and the trimmed value is what Into builds from.
func String(field, raw string) *StringCheck {
	v := strings.TrimSpace(raw)
	return &StringCheck{field: field, value: v}
}

// Required rejects empty or whitespace-only values.
func (c *StringCheck) Required() *StringCheck {
	if c.value == "" {
		c.blank = true
		c.errs = append(c.errs, result.Validation(c.field, result.CodeRequired, "%s is required", c.field))
	}
	return c
}

// Length rejects values whose length in characters is outside [min, max].
func (c *StringCheck) Length(min, max int) *StringCheck {
	if c.blank {
		return c
	}
	n := utf8.RuneCountInString(c.value)
	switch {
	case n < min:
		c.errs = append(c.errs, result.Validation(c.field, result.CodeTooShort,
			"%s must be at least %d characters", c.field, min))
	case n > max:
		c.errs = append(c.errs, result.Validation(c.field, result.CodeTooLong,
			"%s must be at most %d characters", c.field, max))
	}
	return c
}

// Matches rejects values that do not match re. hint describes the expected
// format to the caller, e.g. "a version such as 6.1 or niji 6".
func (c *StringCheck) Matches(re *regexp.Regexp, hint string) *StringCheck {
	if c.blank {
		return c
	}
	if !re.MatchString(c.value) {
		c.errs = append(c.errs, result.Validation(c.field, result.CodeInvalidFormat,
			"%s must be %s", c.field, hint))
	}
	return c
}

// OneOf rejects values not in allowed. The comparison is exact.
func (c *StringCheck) OneOf(allowed ...string) *StringCheck {
	if c.blank {
		return c
	}
	if !slices.Contains(allowed, c.value) {
		c.errs = append(c.errs, result.Validation(c.field, result.CodeInvalidValue,
			"%s must be one of: %s", c.field, strings.Join(allowed, ", ")))
	}
	return c
}

// Must rejects values for which pred returns false.
func (c *StringCheck) Must(pred func(string) bool, code result.Code, message string) *StringCheck {
	if c.blank {
		return c
	}
	if !pred(c.value) {
		c.errs = append(c.errs, result.Validation(c.field, code, "%s %s", c.field, message))
	}
	return c
}

// Errors returns the violations collected so far.
func (c *StringCheck) Errors() []result.Error {
	return c.errs
}

// Into finishes the chain: it returns every violation as one failure, or
// the value built from the trimmed input.
func Into[T any](c *StringCheck, build func(string) T) result.Result[T] {
	if len(c.errs) > 0 {
		return result.FailAll[T](c.errs)
	}
	return result.Ok(build(c.value))
}
