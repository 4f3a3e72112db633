package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/validate"
)

// Field names used in validation errors. They match the JSON request fields.
const (
	FieldStyleName     = "name"
	FieldStyleType     = "type"
	FieldDescription   = "description"
	FieldTag           = "tag"
	FieldTags          = "tags"
	FieldVersion       = "version"
	FieldParameter     = "parameter"
	FieldParameters    = "parameters"
	FieldReleaseDate   = "release_date"
	FieldPropertyName  = "property_name"
	FieldDefaultValue  = "default_value"
	FieldMinValue      = "min_value"
	FieldMaxValue      = "max_value"
	FieldPrompt        = "prompt"
	FieldKeyword       = "keyword"
	FieldPropertyField = "field"
)

var (
	tagPattern          = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} _-]*$`)
	versionPattern      = regexp.MustCompile(`^(niji )?\d+(\.\d+)?$`)
	paramPattern        = regexp.MustCompile(`^--[a-z][a-z0-9-]*( \S.*)?$`)
	propertyNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// StyleName identifies a style. 1 to 150 characters.
type StyleName struct{ value string }

// NewStyleName trims and validates a style name.
func NewStyleName(raw string) result.Result[StyleName] {
	return validate.Into(
		validate.String(FieldStyleName, raw).Required().Length(1, 150),
		func(v string) StyleName { return StyleName{v} },
	)
}

// Value returns the underlying value.
func (n StyleName) Value() string  { return n.value }
func (n StyleName) String() string { return n.value }

// StyleType is the kind of style reference a style wraps.
type StyleType struct{ value string }

// Known style types.
const (
	StyleTypeCustom              = "Custom"
	StyleTypeStyleReferenceCode  = "StyleReferenceCode"
	StyleTypePersonalizationCode = "PersonalizationCode"
)

// NewStyleType accepts one of the known style types, case-sensitively.
func NewStyleType(raw string) result.Result[StyleType] {
	return validate.Into(
		validate.String(FieldStyleType, raw).Required().
			OneOf(StyleTypeCustom, StyleTypeStyleReferenceCode, StyleTypePersonalizationCode),
		func(v string) StyleType { return StyleType{v} },
	)
}

// Value returns the underlying value.
func (t StyleType) Value() string  { return t.value }
func (t StyleType) String() string { return t.value }

// Description is free text attached to styles, versions and properties.
// It is optional on every entity, but when present it must not be blank.
type Description struct{ value string }

// NewDescription validates a non-blank description of up to 500 characters.
func NewDescription(raw string) result.Result[Description] {
	return validate.Into(
		validate.String(FieldDescription, raw).Required().Length(1, 500),
		func(v string) Description { return Description{v} },
	)
}

// Value returns the underlying value.
func (d Description) Value() string  { return d.value }
func (d Description) String() string { return d.value }

// Tag labels a style.
type Tag struct{ value string }

// NewTag validates a single tag.
func NewTag(raw string) result.Result[Tag] {
	return validate.Into(
		validate.String(FieldTag, raw).Required().Length(1, 50).
			Matches(tagPattern, "letters, digits, spaces, hyphens or underscores"),
		func(v string) Tag { return Tag{v} },
	)
}

// Value returns the underlying value.
func (t Tag) Value() string  { return t.value }
func (t Tag) String() string { return t.value }

// ModelVersion is a model version such as "6.1" or "niji 6".
// Versions are ordered by their numeric part; a niji version sorts after the
// standard version with the same number.
type ModelVersion struct{ value string }

// NewModelVersion validates a version such as "6.1" or "niji 6".
func NewModelVersion(raw string) result.Result[ModelVersion] {
	return validate.Into(
		validate.String(FieldVersion, raw).Required().Length(1, 10).
			Matches(versionPattern, "a version such as 6.1 or niji 6"),
		func(v string) ModelVersion { return ModelVersion{v} },
	)
}

// Value returns the underlying value.
func (v ModelVersion) Value() string  { return v.value }
func (v ModelVersion) String() string { return v.value }

// IsNiji reports whether v is a niji model version.
func (v ModelVersion) IsNiji() bool {
	return strings.HasPrefix(v.value, "niji ")
}

// Number returns the numeric part of v as a semantic version.
func (v ModelVersion) Number() *semver.Version {
	n, err := semver.NewVersion(strings.TrimPrefix(v.value, "niji "))
	if err != nil {
		// Unreachable for values built by NewModelVersion.
		return semver.New(0, 0, 0, "", "")
	}
	return n
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other.
func (v ModelVersion) Compare(other ModelVersion) int {
	if c := v.Number().Compare(other.Number()); c != 0 {
		return c
	}
	switch {
	case v.IsNiji() == other.IsNiji():
		return 0
	case v.IsNiji():
		return 1
	default:
		return -1
	}
}

// Param is a command-line style parameter such as "--v 6.1" or "--ar".
type Param struct{ value string }

// NewParam validates a parameter flag, optionally followed by a value.
func NewParam(raw string) result.Result[Param] {
	return validate.Into(
		validate.String(FieldParameter, raw).Required().Length(1, 100).
			Matches(paramPattern, "a flag such as --v 6.1"),
		func(v string) Param { return Param{v} },
	)
}

// Value returns the underlying value.
func (p Param) Value() string  { return p.value }
func (p Param) String() string { return p.value }

// ReleaseDate is the calendar date a model version was released.
type ReleaseDate struct{ value time.Time }

// ReleaseDateLayout is the accepted input format.
const ReleaseDateLayout = "2006-01-02"

// NewReleaseDate parses a YYYY-MM-DD date.
func NewReleaseDate(raw string) result.Result[ReleaseDate] {
	check := validate.String(FieldReleaseDate, raw).Required().
		Must(func(s string) bool {
			_, err := time.Parse(ReleaseDateLayout, s)
			return err == nil
		}, result.CodeInvalidFormat, "must be a date formatted as YYYY-MM-DD")
	return validate.Into(check, func(v string) ReleaseDate {
		t, _ := time.Parse(ReleaseDateLayout, v)
		return ReleaseDate{t}
	})
}

// ReleaseDateOf wraps a date read from storage.
func ReleaseDateOf(t time.Time) ReleaseDate {
	y, m, d := t.Date()
	return ReleaseDate{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Value returns the underlying value.
func (d ReleaseDate) Value() time.Time { return d.value }
func (d ReleaseDate) String() string   { return d.value.Format(ReleaseDateLayout) }

// PropertyName names a version property such as "aspect" or "stylize".
type PropertyName struct{ value string }

// NewPropertyName validates a lowercase property name.
func NewPropertyName(raw string) result.Result[PropertyName] {
	return validate.Into(
		validate.String(FieldPropertyName, raw).Required().Length(1, 25).
			Matches(propertyNamePattern, "lowercase letters, digits or hyphens starting with a letter"),
		func(v string) PropertyName { return PropertyName{v} },
	)
}

// Value returns the underlying value.
func (n PropertyName) Value() string  { return n.value }
func (n PropertyName) String() string { return n.value }

// PropertyValue is a default, minimum or maximum value of a property.
// field selects which one, so errors point at the right input.
type PropertyValue struct{ value string }

// NewPropertyValue validates a property value, reporting errors against field.
func NewPropertyValue(field, raw string) result.Result[PropertyValue] {
	return validate.Into(
		validate.String(field, raw).Required().Length(1, 50),
		func(v string) PropertyValue { return PropertyValue{v} },
	)
}

// Value returns the underlying value.
func (v PropertyValue) Value() string  { return v.value }
func (v PropertyValue) String() string { return v.value }

// Prompt is the text submitted to a model.
type Prompt struct{ value string }

// NewPrompt validates prompt text of up to 1000 characters.
func NewPrompt(raw string) result.Result[Prompt] {
	return validate.Into(
		validate.String(FieldPrompt, raw).Required().Length(1, 1000),
		func(v string) Prompt { return Prompt{v} },
	)
}

// Value returns the underlying value.
func (p Prompt) Value() string  { return p.value }
func (p Prompt) String() string { return p.value }

// Keyword is a search term for prompt history.
type Keyword struct{ value string }

// NewKeyword validates a history search term.
func NewKeyword(raw string) result.Result[Keyword] {
	return validate.Into(
		validate.String(FieldKeyword, raw).Required().Length(1, 100),
		func(v string) Keyword { return Keyword{v} },
	)
}

// Value returns the underlying value.
func (k Keyword) Value() string  { return k.value }
func (k Keyword) String() string { return k.value }
