// Package handler implements the HTTP handlers for the PromptJourney API.
// Handlers are methods on Server and are split into one file per resource.
// They decode requests, call a service and write its result; every status
// code decision lives in response.go.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/service"
)

// StyleServicer defines the style operations the handlers depend on.
// Declaring it here lets handler tests inject a mock.
type StyleServicer interface {
	Create(ctx context.Context, in domain.StyleInput) result.Result[service.StyleResponse]
	Get(ctx context.Context, name string) result.Result[service.StyleResponse]
	List(ctx context.Context, f service.StyleFilter) result.Result[[]service.StyleResponse]
	UpdateDescription(ctx context.Context, name string, description *string) result.Result[service.StyleResponse]
	AddTag(ctx context.Context, name, tag string) result.Result[service.StyleResponse]
	RemoveTag(ctx context.Context, name, tag string) result.Result[service.StyleResponse]
	Delete(ctx context.Context, name string) result.Result[result.Unit]
}

// VersionServicer defines the version operations the handlers depend on.
type VersionServicer interface {
	Create(ctx context.Context, in domain.VersionInput) result.Result[service.VersionResponse]
	Get(ctx context.Context, version string) result.Result[service.VersionResponse]
	List(ctx context.Context) result.Result[[]service.VersionResponse]
	Supported(ctx context.Context) result.Result[[]string]
	Delete(ctx context.Context, version string) result.Result[result.Unit]
}

// PropertyServicer defines the property operations the handlers depend on.
type PropertyServicer interface {
	Create(ctx context.Context, in domain.PropertyInput) result.Result[service.PropertyResponse]
	Get(ctx context.Context, version, name string) result.Result[service.PropertyResponse]
	ListByVersion(ctx context.Context, version string) result.Result[[]service.PropertyResponse]
	Patch(ctx context.Context, version, name, field string, value *string) result.Result[service.PropertyResponse]
	Delete(ctx context.Context, version, name string) result.Result[result.Unit]
}

// HistoryServicer defines the prompt history operations the handlers depend on.
type HistoryServicer interface {
	Add(ctx context.Context, in domain.PromptHistoryInput) result.Result[service.HistoryResponse]
	List(ctx context.Context, page, limit *int) result.Result[service.HistoryPage]
	ListByDateRange(ctx context.Context, from, to time.Time) result.Result[[]service.HistoryResponse]
	ListByKeyword(ctx context.Context, keyword string) result.Result[[]service.HistoryResponse]
	Count(ctx context.Context) result.Result[int64]
}

// Server holds the services every handler needs.
type Server struct {
	styles     StyleServicer
	versions   VersionServicer
	properties PropertyServicer
	history    HistoryServicer
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(styles StyleServicer, versions VersionServicer, properties PropertyServicer, history HistoryServicer, log *slog.Logger) *Server {
	return &Server{
		styles:     styles,
		versions:   versions,
		properties: properties,
		history:    history,
		log:        log,
	}
}

// Routes returns a router serving every API endpoint.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/styles", func(r chi.Router) {
		r.Get("/", s.ListStyles)
		r.Post("/", s.CreateStyle)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.GetStyle)
			r.Put("/", s.UpdateStyleDescription)
			r.Delete("/", s.DeleteStyle)
			r.Post("/tags", s.AddStyleTag)
			r.Delete("/tags/{tag}", s.RemoveStyleTag)
		})
	})

	r.Route("/versions", func(r chi.Router) {
		r.Get("/", s.ListVersions)
		r.Post("/", s.CreateVersion)
		r.Get("/supported", s.ListSupportedVersions)
		r.Route("/{version}", func(r chi.Router) {
			r.Get("/", s.GetVersion)
			r.Delete("/", s.DeleteVersion)
			r.Route("/properties", func(r chi.Router) {
				r.Get("/", s.ListProperties)
				r.Post("/", s.CreateProperty)
				r.Get("/{name}", s.GetProperty)
				r.Patch("/{name}", s.PatchProperty)
				r.Delete("/{name}", s.DeleteProperty)
			})
		})
	})

	r.Route("/history", func(r chi.Router) {
		r.Get("/", s.ListHistory)
		r.Post("/", s.AddHistory)
		r.Get("/range", s.ListHistoryByDateRange)
		r.Get("/search", s.SearchHistory)
		r.Get("/count", s.CountHistory)
	})

	return r
}
