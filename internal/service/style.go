// Package service holds the PromptJourney application operations. Each
// operation is a workflow pipeline: validate the input, check the rules that
// need storage, persist, and project the outcome into a response type.
// No SQL lives here; services depend on repo interfaces.
package service

import (
	"context"
	"slices"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/repo"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/validate"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/workflow"
)

// StyleService implements the Style operations.
type StyleService struct {
	repo repo.StyleRepo
}

// NewStyleService constructs a StyleService backed by the provided StyleRepo.
func NewStyleService(r repo.StyleRepo) *StyleService {
	return &StyleService{repo: r}
}

// StyleFilter narrows List. Zero values mean no filtering; with Tags set only
// styles carrying every tag match.
type StyleFilter struct {
	Type *string
	Tags []string
}

// Create validates and stores a new style.
func (s *StyleService) Create(ctx context.Context, in domain.StyleInput) result.Result[StyleResponse] {
	p := workflow.From(ctx, domain.ParseStyle(in)).
		Ensure(func(ctx context.Context, st domain.Style) result.Result[result.Unit] {
			return absent(s.repo.Exists(ctx, st.Name()), result.AlreadyExists("style %q already exists", st.Name()))
		})
	saved := workflow.ExecuteIfNoErrors(p, s.repo.Add)
	return workflow.MapResult(saved, toStyleResponse).Result()
}

// Get returns one style by name.
func (s *StyleService) Get(ctx context.Context, name string) result.Result[StyleResponse] {
	found := workflow.ExecuteIfNoErrors(workflow.From(ctx, domain.NewStyleName(name)), s.repo.Get)
	return workflow.MapResult(found, toStyleResponse).Result()
}

// List returns the styles matching f ordered by name.
func (s *StyleService) List(ctx context.Context, f StyleFilter) result.Result[[]StyleResponse] {
	criteria := validate.Combine2(
		validate.Optional(f.Type, domain.NewStyleType),
		validate.Each(domain.FieldTags, f.Tags, domain.NewTag),
	)
	found := workflow.ExecuteIfNoErrors(workflow.From(ctx, criteria), s.find)
	return workflow.MapResult(found, each(toStyleResponse)).Result()
}

func (s *StyleService) find(ctx context.Context, c validate.Tuple2[*domain.StyleType, []domain.Tag]) result.Result[[]domain.Style] {
	typ, tags := c.V1, c.V2
	switch {
	case len(tags) > 0:
		found := s.repo.ListByTags(ctx, tags)
		if typ == nil {
			return found
		}
		return result.Map(found, func(ss []domain.Style) []domain.Style {
			return slices.DeleteFunc(ss, func(st domain.Style) bool { return st.Type() != *typ })
		})
	case typ != nil:
		return s.repo.ListByType(ctx, *typ)
	default:
		return s.repo.List(ctx)
	}
}

// UpdateDescription replaces the description of a style. A nil description
// removes it.
func (s *StyleService) UpdateDescription(ctx context.Context, name string, description *string) result.Result[StyleResponse] {
	in := validate.Combine2(domain.NewStyleName(name), validate.Optional(description, domain.NewDescription))
	edited := workflow.ExecuteIfNoErrors(workflow.From(ctx, in),
		func(ctx context.Context, t validate.Tuple2[domain.StyleName, *domain.Description]) result.Result[domain.Style] {
			return result.Bind(s.repo.Get(ctx, t.V1), func(st domain.Style) result.Result[domain.Style] {
				if t.V2 == nil {
					return st.ClearDescription()
				}
				return st.EditDescription(*t.V2)
			})
		})
	saved := workflow.ExecuteIfNoErrors(edited, s.repo.Update)
	return workflow.MapResult(saved, toStyleResponse).Result()
}

// AddTag attaches a tag to a style. Adding a tag the style already carries
// fails with ALREADY_EXISTS.
func (s *StyleService) AddTag(ctx context.Context, name, tag string) result.Result[StyleResponse] {
	return s.retag(ctx, name, tag, domain.Style.AddTag)
}

// RemoveTag detaches a tag from a style. Removing a tag the style does not
// carry fails with NOT_FOUND.
func (s *StyleService) RemoveTag(ctx context.Context, name, tag string) result.Result[StyleResponse] {
	return s.retag(ctx, name, tag, domain.Style.RemoveTag)
}

func (s *StyleService) retag(
	ctx context.Context,
	name, tag string,
	change func(domain.Style, domain.Tag) result.Result[domain.Style],
) result.Result[StyleResponse] {
	in := validate.Combine2(domain.NewStyleName(name), domain.NewTag(tag))
	changed := workflow.ExecuteIfNoErrors(workflow.From(ctx, in),
		func(ctx context.Context, t validate.Tuple2[domain.StyleName, domain.Tag]) result.Result[domain.Style] {
			return result.Bind(s.repo.Get(ctx, t.V1), func(st domain.Style) result.Result[domain.Style] {
				return change(st, t.V2)
			})
		})
	saved := workflow.ExecuteIfNoErrors(changed, s.repo.Update)
	return workflow.MapResult(saved, toStyleResponse).Result()
}

// Delete removes a style by name.
func (s *StyleService) Delete(ctx context.Context, name string) result.Result[result.Unit] {
	return workflow.ExecuteIfNoErrors(workflow.From(ctx, domain.NewStyleName(name)), s.repo.Delete).Result()
}
