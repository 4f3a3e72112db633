package repo_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/testutil"
)

func newTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

// must unwraps a successful result or fails the test with its errors.
func must[T any](t *testing.T, r result.Result[T]) T {
	t.Helper()
	require.True(t, r.IsSuccess(), "unexpected failure: %v", r.Err())
	return r.Value()
}

func ptr[T any](v T) *T { return &v }

func styleFixture(t *testing.T, name string, tags ...string) domain.Style {
	t.Helper()
	return must(t, domain.ParseStyle(domain.StyleInput{
		Name:        name,
		Type:        domain.StyleTypeCustom,
		Description: ptr("moody black and white"),
		Tags:        tags,
	}))
}

func versionFixture(t *testing.T, version, param string) domain.Version {
	t.Helper()
	return must(t, domain.ParseVersion(domain.VersionInput{
		Version:     version,
		Parameter:   param,
		ReleaseDate: ptr("2024-07-30"),
	}))
}

func propertyFixture(t *testing.T, version, name string) domain.Property {
	t.Helper()
	return must(t, domain.ParseProperty(domain.PropertyInput{
		Version:      version,
		Name:         name,
		Parameters:   []string{"--ar", "--aspect"},
		DefaultValue: ptr("1:1"),
	}))
}
