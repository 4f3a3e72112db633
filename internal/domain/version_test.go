package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

func version(t *testing.T, v string) domain.Version {
	t.Helper()
	r := domain.ParseVersion(domain.VersionInput{Version: v, Parameter: "--v " + v})
	require.True(t, r.IsSuccess(), "version %q: %v", v, r.Err())
	return r.Value()
}

func TestParseVersion_SameInputSameOutcome(t *testing.T) {
	inputs := []domain.VersionInput{
		{Version: "6.1", Parameter: "--v 6.1", ReleaseDate: ptr("2024-07-30"), Description: ptr("current")},
		{Version: "seven", Parameter: "v7", ReleaseDate: ptr("30/07/2024")},
	}
	for _, in := range inputs {
		first, second := domain.ParseVersion(in), domain.ParseVersion(in)

		assert.Equal(t, first, second)
		assert.Equal(t, first.Errors(), second.Errors())
	}
}

func TestParseVersion_ReportsEveryField(t *testing.T) {
	r := domain.ParseVersion(domain.VersionInput{Version: "seven", Parameter: "v7", ReleaseDate: ptr("30/07/2024")})

	require.True(t, r.IsFailure())
	assert.Equal(t, []string{domain.FieldVersion, domain.FieldParameter, domain.FieldReleaseDate}, fields(r.Errors()))
	for _, e := range r.Errors() {
		assert.Equal(t, result.CodeInvalidFormat, e.Code)
	}
}

func TestParseVersion_ReleaseDate(t *testing.T) {
	r := domain.ParseVersion(domain.VersionInput{Version: "6.1", Parameter: "--v 6.1", ReleaseDate: ptr("2024-07-30")})

	require.True(t, r.IsSuccess())
	assert.Equal(t, "2024-07-30", r.Value().ReleaseDate().String())
	assert.Nil(t, r.Value().Description())
}

// ---- SortVersions ----------------------------------------------------------

func TestSortVersions_NijiFollowsItsStandardVersion(t *testing.T) {
	vs := []domain.Version{
		version(t, "niji 6"),
		version(t, "6.1"),
		version(t, "5.2"),
		version(t, "niji 5"),
		version(t, "6"),
		version(t, "10"),
	}

	domain.SortVersions(vs)

	got := make([]string, len(vs))
	for i, v := range vs {
		got[i] = v.Version().Value()
	}
	assert.Equal(t, []string{"5.2", "niji 5", "6", "niji 6", "6.1", "10"}, got)
}

func TestModelVersion_Compare(t *testing.T) {
	mv := func(s string) domain.ModelVersion { return domain.NewModelVersion(s).Value() }

	assert.Equal(t, 0, mv("6").Compare(mv("6")))
	assert.Equal(t, -1, mv("6").Compare(mv("niji 6")))
	assert.Equal(t, 1, mv("niji 6").Compare(mv("6")))
	assert.Equal(t, 1, mv("6.1").Compare(mv("niji 6")))
}
