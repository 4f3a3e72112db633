package domain

import (
	"slices"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/validate"
)

// Version is a model version together with the parameter that selects it.
type Version struct {
	version     ModelVersion
	parameter   Param
	releaseDate *ReleaseDate
	description *Description
}

// VersionInput carries raw version fields.
type VersionInput struct {
	Version     string
	Parameter   string
	ReleaseDate *string
	Description *string
}

// NewVersion builds a Version from validated parts, reporting every failing
// part at once.
func NewVersion(
	version result.Result[ModelVersion],
	parameter result.Result[Param],
	releaseDate result.Result[*ReleaseDate],
	description result.Result[*Description],
) result.Result[Version] {
	return result.Map(validate.Combine4(version, parameter, releaseDate, description),
		func(t validate.Tuple4[ModelVersion, Param, *ReleaseDate, *Description]) Version {
			return Version{version: t.V1, parameter: t.V2, releaseDate: t.V3, description: t.V4}
		})
}

// ParseVersion validates raw input and builds a Version.
func ParseVersion(in VersionInput) result.Result[Version] {
	return NewVersion(
		NewModelVersion(in.Version),
		NewParam(in.Parameter),
		validate.Optional(in.ReleaseDate, NewReleaseDate),
		validate.Optional(in.Description, NewDescription),
	)
}

// Version returns the model version that identifies v.
func (v Version) Version() ModelVersion { return v.version }

// Parameter returns the flag that selects the version, e.g. "--v 6.1".
func (v Version) Parameter() Param { return v.parameter }

// ReleaseDate returns the release date, or nil when unknown.
func (v Version) ReleaseDate() *ReleaseDate { return v.releaseDate }

// Description returns the description, or nil when the version has none.
func (v Version) Description() *Description { return v.description }

// SortVersions orders versions oldest first.
func SortVersions(vs []Version) {
	slices.SortStableFunc(vs, func(a, b Version) int {
		return a.version.Compare(b.version)
	})
}
