package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/service"
)

type createStyleRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

type updateStyleRequest struct {
	Description *string `json:"description"`
}

type addTagRequest struct {
	Tag string `json:"tag"`
}

// ListStyles handles GET /styles?type=&tag=.
// tag may be repeated; only styles carrying every tag are returned.
func (s *Server) ListStyles(w http.ResponseWriter, r *http.Request) {
	var (
		f    service.StyleFilter
		tags *[]string
	)
	q := r.URL.Query()
	errs := append(bindQuery(q, "type", false, &f.Type), bindQuery(q, "tag", false, &tags)...)
	if len(errs) > 0 {
		respond(s, w, r, result.FailAll[[]service.StyleResponse](errs), http.StatusOK)
		return
	}
	if tags != nil {
		f.Tags = *tags
	}
	respond(s, w, r, s.styles.List(r.Context(), f), http.StatusOK)
}

// CreateStyle handles POST /styles.
func (s *Server) CreateStyle(w http.ResponseWriter, r *http.Request) {
	var req createStyleRequest
	if errs := decodeBody(r, &req); errs != nil {
		respond(s, w, r, result.FailAll[service.StyleResponse](errs), http.StatusCreated)
		return
	}
	in := domain.StyleInput{Name: req.Name, Type: req.Type, Description: req.Description, Tags: req.Tags}
	respond(s, w, r, s.styles.Create(r.Context(), in), http.StatusCreated)
}

// GetStyle handles GET /styles/{name}.
func (s *Server) GetStyle(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.styles.Get(r.Context(), chi.URLParam(r, "name")), http.StatusOK)
}

// UpdateStyleDescription handles PUT /styles/{name}. A null or missing
// description removes it.
func (s *Server) UpdateStyleDescription(w http.ResponseWriter, r *http.Request) {
	var req updateStyleRequest
	if errs := decodeBody(r, &req); errs != nil {
		respond(s, w, r, result.FailAll[service.StyleResponse](errs), http.StatusOK)
		return
	}
	respond(s, w, r, s.styles.UpdateDescription(r.Context(), chi.URLParam(r, "name"), req.Description), http.StatusOK)
}

// DeleteStyle handles DELETE /styles/{name}.
func (s *Server) DeleteStyle(w http.ResponseWriter, r *http.Request) {
	respondEmpty(s, w, r, s.styles.Delete(r.Context(), chi.URLParam(r, "name")))
}

// AddStyleTag handles POST /styles/{name}/tags.
func (s *Server) AddStyleTag(w http.ResponseWriter, r *http.Request) {
	var req addTagRequest
	if errs := decodeBody(r, &req); errs != nil {
		respond(s, w, r, result.FailAll[service.StyleResponse](errs), http.StatusOK)
		return
	}
	respond(s, w, r, s.styles.AddTag(r.Context(), chi.URLParam(r, "name"), req.Tag), http.StatusOK)
}

// RemoveStyleTag handles DELETE /styles/{name}/tags/{tag}.
func (s *Server) RemoveStyleTag(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.styles.RemoveTag(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "tag")), http.StatusOK)
}
