package service

import (
	"context"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/repo"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/validate"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/workflow"
)

// PropertyService implements the operations on the properties of a version.
type PropertyService struct {
	repo     repo.PropertyRepo
	versions repo.VersionRepo
}

// NewPropertyService constructs a PropertyService. versions is consulted to
// make sure a property's version exists.
func NewPropertyService(r repo.PropertyRepo, versions repo.VersionRepo) *PropertyService {
	return &PropertyService{repo: r, versions: versions}
}

// propertyKey addresses one property.
type propertyKey = validate.Tuple2[domain.ModelVersion, domain.PropertyName]

func parsePropertyKey(version, name string) result.Result[propertyKey] {
	return validate.Combine2(domain.NewModelVersion(version), domain.NewPropertyName(name))
}

func (s *PropertyService) versionExists(ctx context.Context, v domain.ModelVersion) result.Result[result.Unit] {
	return present(s.versions.Exists(ctx, v), result.NotFound("version %q not found", v))
}

// Create validates and stores a property for an existing version.
func (s *PropertyService) Create(ctx context.Context, in domain.PropertyInput) result.Result[PropertyResponse] {
	p := workflow.From(ctx, domain.ParseProperty(in)).
		Ensure(func(ctx context.Context, prop domain.Property) result.Result[result.Unit] {
			return s.versionExists(ctx, prop.Version())
		}).
		Ensure(func(ctx context.Context, prop domain.Property) result.Result[result.Unit] {
			return absent(s.repo.Exists(ctx, prop.Version(), prop.Name()),
				result.AlreadyExists("property %q of version %q already exists", prop.Name(), prop.Version()))
		})
	saved := workflow.ExecuteIfNoErrors(p, s.repo.Add)
	return workflow.MapResult(saved, toPropertyResponse).Result()
}

// Get returns one property of a version.
func (s *PropertyService) Get(ctx context.Context, version, name string) result.Result[PropertyResponse] {
	found := workflow.ExecuteIfNoErrors(workflow.From(ctx, parsePropertyKey(version, name)), s.get)
	return workflow.MapResult(found, toPropertyResponse).Result()
}

func (s *PropertyService) get(ctx context.Context, k propertyKey) result.Result[domain.Property] {
	return s.repo.Get(ctx, k.V1, k.V2)
}

// ListByVersion returns the properties of a version ordered by name. An
// unknown version is NOT_FOUND rather than an empty list.
func (s *PropertyService) ListByVersion(ctx context.Context, version string) result.Result[[]PropertyResponse] {
	p := workflow.From(ctx, domain.NewModelVersion(version)).Ensure(s.versionExists)
	found := workflow.ExecuteIfNoErrors(p, s.repo.ListByVersion)
	return workflow.MapResult(found, each(toPropertyResponse)).Result()
}

// Patch sets one field of a property. field is one of
// domain.PatchableFields; a nil value clears an optional field.
func (s *PropertyService) Patch(ctx context.Context, version, name, field string, value *string) result.Result[PropertyResponse] {
	found := workflow.ExecuteIfNoErrors(workflow.From(ctx, parsePropertyKey(version, name)), s.get)
	patched := workflow.ExecuteIfNoErrors(found, func(_ context.Context, prop domain.Property) result.Result[domain.Property] {
		return prop.Patch(field, value)
	})
	saved := workflow.ExecuteIfNoErrors(patched, s.repo.Update)
	return workflow.MapResult(saved, toPropertyResponse).Result()
}

// Delete removes one property of a version.
func (s *PropertyService) Delete(ctx context.Context, version, name string) result.Result[result.Unit] {
	deleted := workflow.ExecuteIfNoErrors(workflow.From(ctx, parsePropertyKey(version, name)),
		func(ctx context.Context, k propertyKey) result.Result[result.Unit] {
			return s.repo.Delete(ctx, k.V1, k.V2)
		})
	return deleted.Result()
}
