package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/repo"
)

func newHistoryRepo(t *testing.T) repo.HistoryRepo {
	t.Helper()
	tx := newTx(t)
	must(t, repo.NewVersionRepo(tx).Add(context.Background(), versionFixture(t, "6.1", "--v 6.1")))
	return repo.NewHistoryRepo(tx)
}

func addPrompt(t *testing.T, r repo.HistoryRepo, prompt string) domain.PromptHistory {
	t.Helper()
	h := must(t, domain.ParsePromptHistory(domain.PromptHistoryInput{Prompt: prompt, Version: "6.1"}))
	return must(t, r.Add(context.Background(), h))
}

func TestHistoryRepo_Add(t *testing.T) {
	r := newHistoryRepo(t)

	got := addPrompt(t, r, "a cat in a hat")

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.CreatedOn.IsZero())
	assert.Equal(t, "a cat in a hat", got.Prompt.Value())
}

func TestHistoryRepo_ListPagedAndCount(t *testing.T) {
	r := newHistoryRepo(t)
	ctx := context.Background()
	for _, p := range []string{"one", "two", "three"} {
		addPrompt(t, r, p)
	}

	page := must(t, r.ListPaged(ctx, domain.NewPaginationParams(ptr(1), ptr(2))))

	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages())
	assert.Equal(t, int64(3), must(t, r.Count(ctx)))
}

func TestHistoryRepo_ListByKeyword_IgnoresCase(t *testing.T) {
	r := newHistoryRepo(t)
	addPrompt(t, r, "A Cat in a hat")
	addPrompt(t, r, "a dog")

	got := must(t, r.ListByKeyword(context.Background(), must(t, domain.NewKeyword("cat"))))

	require.Len(t, got, 1)
	assert.Equal(t, "A Cat in a hat", got[0].Prompt.Value())
}

func TestHistoryRepo_ListByDateRange(t *testing.T) {
	r := newHistoryRepo(t)
	addPrompt(t, r, "now")

	// now() is fixed for the duration of the transaction.
	all := must(t, r.ListByDateRange(context.Background(), must(t, domain.NewDateRange(
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour)))))
	none := must(t, r.ListByDateRange(context.Background(), must(t, domain.NewDateRange(
		time.Now().Add(-48*time.Hour), time.Now().Add(-24*time.Hour)))))

	assert.Len(t, all, 1)
	assert.Empty(t, none)
}
