package domain

import (
	"fmt"
	"slices"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/validate"
)

// Style is a named, reusable style reference with optional tags.
// A Style value is always fully valid: it can only be obtained from
// NewStyle (or ParseStyle) and its mutators return a fresh copy.
type Style struct {
	name        StyleName
	typ         StyleType
	description *Description
	tags        []Tag
}

// StyleInput carries raw style fields as they arrive from a request.
// Description is nil when the caller omitted it.
type StyleInput struct {
	Name        string
	Type        string
	Description *string
	Tags        []string
}

// NewStyle builds a Style from already-validated parts, reporting every
// failing part at once. A tag may appear only once.
func NewStyle(
	name result.Result[StyleName],
	typ result.Result[StyleType],
	description result.Result[*Description],
	tags result.Result[[]Tag],
) result.Result[Style] {
	return result.Map(validate.Combine4(name, typ, description, result.Bind(tags, distinctTags)),
		func(t validate.Tuple4[StyleName, StyleType, *Description, []Tag]) Style {
			return Style{name: t.V1, typ: t.V2, description: t.V3, tags: t.V4}
		})
}

// ParseStyle validates raw input and builds a Style.
func ParseStyle(in StyleInput) result.Result[Style] {
	return NewStyle(
		NewStyleName(in.Name),
		NewStyleType(in.Type),
		validate.Optional(in.Description, NewDescription),
		validate.Each(FieldTags, in.Tags, NewTag),
	)
}

// distinctTags reports every repeat of an earlier tag at its index.
func distinctTags(tags []Tag) result.Result[[]Tag] {
	var errs []result.Error
	for i, t := range tags {
		if slices.Contains(tags[:i], t) {
			field := fmt.Sprintf("%s[%d]", FieldTags, i)
			errs = append(errs, result.Validation(field, result.CodeInvalidValue, "tag %q is listed more than once", t))
		}
	}
	if len(errs) > 0 {
		return result.FailAll[[]Tag](errs)
	}
	return result.Ok(tags)
}

// Name returns the style's unique name.
func (s Style) Name() StyleName { return s.name }

// Type returns the kind of style reference.
func (s Style) Type() StyleType { return s.typ }

// Description returns the description, or nil when the style has none.
func (s Style) Description() *Description { return s.description }

// Tags returns a copy of the style's tags. It is never nil.
func (s Style) Tags() []Tag {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// HasTag reports whether the style carries tag.
func (s Style) HasTag(tag Tag) bool {
	return slices.Contains(s.tags, tag)
}

// EditDescription returns a copy of s with its description replaced.
func (s Style) EditDescription(d Description) result.Result[Style] {
	s.description = &d
	return result.Ok(s)
}

// ClearDescription returns a copy of s without a description.
func (s Style) ClearDescription() result.Result[Style] {
	s.description = nil
	return result.Ok(s)
}

// AddTag returns a copy of s with tag appended.
// It fails if the style already carries the tag.
func (s Style) AddTag(tag Tag) result.Result[Style] {
	if s.HasTag(tag) {
		return result.Fail[Style](result.AlreadyExists("style %q already has tag %q", s.name, tag))
	}
	s.tags = append(s.Tags(), tag)
	return result.Ok(s)
}

// RemoveTag returns a copy of s without tag.
// It fails if the style does not carry the tag.
func (s Style) RemoveTag(tag Tag) result.Result[Style] {
	if !s.HasTag(tag) {
		return result.Fail[Style](result.NotFound("style %q has no tag %q", s.name, tag))
	}
	s.tags = slices.DeleteFunc(s.Tags(), func(t Tag) bool { return t == tag })
	return result.Ok(s)
}
