package service

import (
	"context"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/repo"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/workflow"
)

// VersionService implements the model Version operations.
type VersionService struct {
	repo repo.VersionRepo
}

// NewVersionService constructs a VersionService backed by the provided VersionRepo.
func NewVersionService(r repo.VersionRepo) *VersionService {
	return &VersionService{repo: r}
}

// Create validates and stores a new version.
func (s *VersionService) Create(ctx context.Context, in domain.VersionInput) result.Result[VersionResponse] {
	p := workflow.From(ctx, domain.ParseVersion(in)).
		Ensure(func(ctx context.Context, v domain.Version) result.Result[result.Unit] {
			return absent(s.repo.Exists(ctx, v.Version()), result.AlreadyExists("version %q already exists", v.Version()))
		})
	saved := workflow.ExecuteIfNoErrors(p, s.repo.Add)
	return workflow.MapResult(saved, toVersionResponse).Result()
}

// Get returns one version.
func (s *VersionService) Get(ctx context.Context, version string) result.Result[VersionResponse] {
	found := workflow.ExecuteIfNoErrors(workflow.From(ctx, domain.NewModelVersion(version)), s.repo.Get)
	return workflow.MapResult(found, toVersionResponse).Result()
}

// List returns every version, oldest first.
func (s *VersionService) List(ctx context.Context) result.Result[[]VersionResponse] {
	sorted := workflow.MapResult(s.sorted(ctx), each(toVersionResponse))
	return sorted.Result()
}

// Supported returns the version strings the store knows about, oldest first.
func (s *VersionService) Supported(ctx context.Context) result.Result[[]string] {
	names := workflow.MapResult(s.sorted(ctx), each(func(v domain.Version) string { return v.Version().Value() }))
	return names.Result()
}

func (s *VersionService) sorted(ctx context.Context) *workflow.Pipeline[[]domain.Version] {
	listed := workflow.ExecuteIfNoErrors(workflow.Empty(ctx), func(ctx context.Context, _ result.Unit) result.Result[[]domain.Version] {
		return s.repo.List(ctx)
	})
	return workflow.MapResult(listed, func(vs []domain.Version) []domain.Version {
		domain.SortVersions(vs)
		return vs
	})
}

// Delete removes a version and every property defined for it.
func (s *VersionService) Delete(ctx context.Context, version string) result.Result[result.Unit] {
	return workflow.ExecuteIfNoErrors(workflow.From(ctx, domain.NewModelVersion(version)), s.repo.Delete).Result()
}
