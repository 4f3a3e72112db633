package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/service"
)

func TestHistoryService_Add(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := service.NewHistoryService(&mockHistoryRepo{
		add: func(_ context.Context, h domain.PromptHistory) result.Result[domain.PromptHistory] {
			h.ID, h.CreatedOn = id, at
			return ok(h)
		},
	}, &mockVersionRepo{exists: exists(true)})

	got := svc.Add(context.Background(), domain.PromptHistoryInput{Prompt: "a cat", Version: "6.1"})

	require.True(t, got.IsSuccess())
	assert.Equal(t, service.HistoryResponse{ID: id, Prompt: "a cat", Version: "6.1", CreatedOn: at}, got.Value())
}

func TestHistoryService_Add_UnknownVersion(t *testing.T) {
	svc := service.NewHistoryService(&mockHistoryRepo{}, &mockVersionRepo{exists: exists(false)})

	got := svc.Add(context.Background(), domain.PromptHistoryInput{Prompt: "a cat", Version: "6.1"})

	assert.True(t, got.HasCode(result.CodeNotFound))
}

func TestHistoryService_List_Defaults(t *testing.T) {
	var params domain.PaginationParams
	svc := service.NewHistoryService(&mockHistoryRepo{
		listPaged: func(_ context.Context, p domain.PaginationParams) result.Result[domain.Page[domain.PromptHistory]] {
			params = p
			return ok(domain.Page[domain.PromptHistory]{Items: []domain.PromptHistory{}, Total: 45, PaginationParams: p})
		},
	}, &mockVersionRepo{})

	got := svc.List(context.Background(), nil, ptr(500))

	require.True(t, got.IsSuccess())
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 100}, params)
	assert.Equal(t, 1, got.Value().TotalPages)
	assert.Equal(t, int64(45), got.Value().Total)
	assert.NotNil(t, got.Value().Items)
}

func TestHistoryService_ListByDateRange_Reversed(t *testing.T) {
	svc := service.NewHistoryService(&mockHistoryRepo{}, &mockVersionRepo{})
	now := time.Now()

	got := svc.ListByDateRange(context.Background(), now, now.Add(-time.Hour))

	require.Len(t, got.Errors(), 1)
	assert.Equal(t, result.LayerApplicationRule, got.Errors()[0].Layer)
}

func TestHistoryService_ListByKeyword(t *testing.T) {
	var searched string
	svc := service.NewHistoryService(&mockHistoryRepo{
		listByKeyword: func(_ context.Context, k domain.Keyword) result.Result[[]domain.PromptHistory] {
			searched = k.Value()
			return ok([]domain.PromptHistory{})
		},
	}, &mockVersionRepo{})

	got := svc.ListByKeyword(context.Background(), "  cat ")
	blank := svc.ListByKeyword(context.Background(), "")

	require.True(t, got.IsSuccess())
	assert.Equal(t, "cat", searched)
	assert.True(t, blank.HasCode(result.CodeRequired))
}

func TestHistoryService_Count(t *testing.T) {
	svc := service.NewHistoryService(&mockHistoryRepo{
		count: func(context.Context) result.Result[int64] { return ok(int64(3)) },
	}, &mockVersionRepo{})

	got := svc.Count(context.Background())

	assert.Equal(t, int64(3), got.Value())
}
