package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/service"
)

type createVersionRequest struct {
	Version     string  `json:"version"`
	Parameter   string  `json:"parameter"`
	ReleaseDate *string `json:"release_date"`
	Description *string `json:"description"`
}

// ListVersions handles GET /versions. Versions are ordered oldest first.
func (s *Server) ListVersions(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.versions.List(r.Context()), http.StatusOK)
}

// ListSupportedVersions handles GET /versions/supported.
func (s *Server) ListSupportedVersions(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.versions.Supported(r.Context()), http.StatusOK)
}

// CreateVersion handles POST /versions.
func (s *Server) CreateVersion(w http.ResponseWriter, r *http.Request) {
	var req createVersionRequest
	if errs := decodeBody(r, &req); errs != nil {
		respond(s, w, r, result.FailAll[service.VersionResponse](errs), http.StatusCreated)
		return
	}
	in := domain.VersionInput{
		Version:     req.Version,
		Parameter:   req.Parameter,
		ReleaseDate: req.ReleaseDate,
		Description: req.Description,
	}
	respond(s, w, r, s.versions.Create(r.Context(), in), http.StatusCreated)
}

// GetVersion handles GET /versions/{version}.
func (s *Server) GetVersion(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.versions.Get(r.Context(), chi.URLParam(r, "version")), http.StatusOK)
}

// DeleteVersion handles DELETE /versions/{version}.
func (s *Server) DeleteVersion(w http.ResponseWriter, r *http.Request) {
	respondEmpty(s, w, r, s.versions.Delete(r.Context(), chi.URLParam(r, "version")))
}
