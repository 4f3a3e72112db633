package handler

import (
	"net/http"
	"time"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/service"
)

type addHistoryRequest struct {
	Prompt  string `json:"prompt"`
	Version string `json:"version"`
}

// CountResponse is the body of GET /history/count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// ListHistory handles GET /history?page=&limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListHistory(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	q := r.URL.Query()
	errs := append(bindQuery(q, "page", false, &page), bindQuery(q, "limit", false, &limit)...)
	if len(errs) > 0 {
		respond(s, w, r, result.FailAll[service.HistoryPage](errs), http.StatusOK)
		return
	}
	respond(s, w, r, s.history.List(r.Context(), page, limit), http.StatusOK)
}

// AddHistory handles POST /history.
func (s *Server) AddHistory(w http.ResponseWriter, r *http.Request) {
	var req addHistoryRequest
	if errs := decodeBody(r, &req); errs != nil {
		respond(s, w, r, result.FailAll[service.HistoryResponse](errs), http.StatusCreated)
		return
	}
	in := domain.PromptHistoryInput{Prompt: req.Prompt, Version: req.Version}
	respond(s, w, r, s.history.Add(r.Context(), in), http.StatusCreated)
}

// ListHistoryByDateRange handles GET /history/range?from=&to=.
// Both bounds are RFC 3339 timestamps and are included in the range.
func (s *Server) ListHistoryByDateRange(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	q := r.URL.Query()
	errs := append(bindQuery(q, "from", true, &from), bindQuery(q, "to", true, &to)...)
	if len(errs) > 0 {
		respond(s, w, r, result.FailAll[[]service.HistoryResponse](errs), http.StatusOK)
		return
	}
	respond(s, w, r, s.history.ListByDateRange(r.Context(), from, to), http.StatusOK)
}

// SearchHistory handles GET /history/search?q=.
func (s *Server) SearchHistory(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.history.ListByKeyword(r.Context(), r.URL.Query().Get("q")), http.StatusOK)
}

// CountHistory handles GET /history/count.
func (s *Server) CountHistory(w http.ResponseWriter, r *http.Request) {
	counted := result.Map(s.history.Count(r.Context()), func(n int64) CountResponse { return CountResponse{Count: n} })
	respond(s, w, r, counted, http.StatusOK)
}
