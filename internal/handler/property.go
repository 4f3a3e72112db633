package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/service"
)

type createPropertyRequest struct {
	Name         string   `json:"name"`
	Parameters   []string `json:"parameters"`
	DefaultValue *string  `json:"default_value"`
	MinValue     *string  `json:"min_value"`
	MaxValue     *string  `json:"max_value"`
	Description  *string  `json:"description"`
}

// patchPropertyRequest sets one field. A null value clears it.
type patchPropertyRequest struct {
	Field string  `json:"field"`
	Value *string `json:"value"`
}

// ListProperties handles GET /versions/{version}/properties.
func (s *Server) ListProperties(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.properties.ListByVersion(r.Context(), chi.URLParam(r, "version")), http.StatusOK)
}

// CreateProperty handles POST /versions/{version}/properties.
func (s *Server) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if errs := decodeBody(r, &req); errs != nil {
		respond(s, w, r, result.FailAll[service.PropertyResponse](errs), http.StatusCreated)
		return
	}
	in := domain.PropertyInput{
		Version:      chi.URLParam(r, "version"),
		Name:         req.Name,
		Parameters:   req.Parameters,
		DefaultValue: req.DefaultValue,
		MinValue:     req.MinValue,
		MaxValue:     req.MaxValue,
		Description:  req.Description,
	}
	respond(s, w, r, s.properties.Create(r.Context(), in), http.StatusCreated)
}

// GetProperty handles GET /versions/{version}/properties/{name}.
func (s *Server) GetProperty(w http.ResponseWriter, r *http.Request) {
	got := s.properties.Get(r.Context(), chi.URLParam(r, "version"), chi.URLParam(r, "name"))
	respond(s, w, r, got, http.StatusOK)
}

// PatchProperty handles PATCH /versions/{version}/properties/{name}.
func (s *Server) PatchProperty(w http.ResponseWriter, r *http.Request) {
	var req patchPropertyRequest
	if errs := decodeBody(r, &req); errs != nil {
		respond(s, w, r, result.FailAll[service.PropertyResponse](errs), http.StatusOK)
		return
	}
	got := s.properties.Patch(r.Context(), chi.URLParam(r, "version"), chi.URLParam(r, "name"), req.Field, req.Value)
	respond(s, w, r, got, http.StatusOK)
}

// DeleteProperty handles DELETE /versions/{version}/properties/{name}.
func (s *Server) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	respondEmpty(s, w, r, s.properties.Delete(r.Context(), chi.URLParam(r, "version"), chi.URLParam(r, "name")))
}
