package service

import (
	"context"
	"time"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/repo"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/workflow"
)

// HistoryService records and queries submitted prompts.
type HistoryService struct {
	repo     repo.HistoryRepo
	versions repo.VersionRepo
}

// NewHistoryService constructs a HistoryService. versions is consulted to
// make sure a prompt refers to a known version.
func NewHistoryService(r repo.HistoryRepo, versions repo.VersionRepo) *HistoryService {
	return &HistoryService{repo: r, versions: versions}
}

// Add records a prompt submitted against an existing version.
func (s *HistoryService) Add(ctx context.Context, in domain.PromptHistoryInput) result.Result[HistoryResponse] {
	p := workflow.From(ctx, domain.ParsePromptHistory(in)).
		Ensure(func(ctx context.Context, h domain.PromptHistory) result.Result[result.Unit] {
			return present(s.versions.Exists(ctx, h.Version), result.NotFound("version %q not found", h.Version))
		})
	saved := workflow.ExecuteIfNoErrors(p, s.repo.Add)
	return workflow.MapResult(saved, toHistoryResponse).Result()
}

// List returns one page of history, newest first. Nil page or limit fall
// back to defaults.
func (s *HistoryService) List(ctx context.Context, page, limit *int) result.Result[HistoryPage] {
	params := result.Ok(domain.NewPaginationParams(page, limit))
	found := workflow.ExecuteIfNoErrors(workflow.From(ctx, params), s.repo.ListPaged)
	return workflow.MapResult(found, toHistoryPage).Result()
}

// ListByDateRange returns the records created between from and to, both
// included. from after to is rejected.
func (s *HistoryService) ListByDateRange(ctx context.Context, from, to time.Time) result.Result[[]HistoryResponse] {
	found := workflow.ExecuteIfNoErrors(workflow.From(ctx, domain.NewDateRange(from, to)), s.repo.ListByDateRange)
	return workflow.MapResult(found, each(toHistoryResponse)).Result()
}

// ListByKeyword returns the records whose prompt contains keyword.
func (s *HistoryService) ListByKeyword(ctx context.Context, keyword string) result.Result[[]HistoryResponse] {
	found := workflow.ExecuteIfNoErrors(workflow.From(ctx, domain.NewKeyword(keyword)), s.repo.ListByKeyword)
	return workflow.MapResult(found, each(toHistoryResponse)).Result()
}

// Count returns the number of stored history records.
func (s *HistoryService) Count(ctx context.Context) result.Result[int64] {
	counted := workflow.ExecuteIfNoErrors(workflow.Empty(ctx), func(ctx context.Context, _ result.Unit) result.Result[int64] {
		return s.repo.Count(ctx)
	})
	return counted.Result()
}
