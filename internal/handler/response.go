package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// StatusClientClosedRequest is written when the request context was
// canceled before the operation finished.
const StatusClientClosedRequest = 499

// CodeCanceled is the error code reported for canceled requests.
const CodeCanceled = "REQUEST_CANCELED"

// ErrorDetail summarises a failure in a single code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response. Errors lists every
// error the operation produced, in order.
type ErrorResponse struct {
	Error  ErrorDetail    `json:"error"`
	Errors []result.Error `json:"errors"`
}

// statusOf maps a failed result to its HTTP status. Persistence errors win
// over NOT_FOUND, which wins over everything else.
func statusOf[T any](r result.Result[T]) int {
	switch {
	case r.IsCanceled():
		return StatusClientClosedRequest
	case r.HasLayer(result.LayerPersistence):
		return http.StatusInternalServerError
	case r.HasCode(result.CodeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// errorBody builds the response body for a failed result. The summary
// carries the error that decided the status code.
func errorBody[T any](r result.Result[T], status int) ErrorResponse {
	if r.IsCanceled() {
		return ErrorResponse{
			Error:  ErrorDetail{Code: CodeCanceled, Message: "request canceled"},
			Errors: []result.Error{},
		}
	}

	errs := r.Errors()
	lead := errs[0]
	for _, e := range errs {
		if (status == http.StatusInternalServerError && e.Layer == result.LayerPersistence) ||
			(status == http.StatusNotFound && e.Code == result.CodeNotFound) {
			lead = e
			break
		}
	}
	return ErrorResponse{
		Error:  ErrorDetail{Code: string(lead.Code), Message: lead.Message},
		Errors: errs,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respond writes res as JSON with the success status, or the error body of
// a failed result.
func respond[T any](s *Server, w http.ResponseWriter, r *http.Request, res result.Result[T], success int) {
	if res.IsSuccess() {
		writeJSON(w, success, res.Value())
		return
	}
	status := statusOf(res)
	body := errorBody(res, status)
	if status == http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"errors", body.Errors)
	}
	writeJSON(w, status, body)
}

// respondEmpty writes 204 for a successful result.
func respondEmpty(s *Server, w http.ResponseWriter, r *http.Request, res result.Result[result.Unit]) {
	if res.IsSuccess() {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond(s, w, r, res, http.StatusNoContent)
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any) []result.Error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return []result.Error{result.Validation("body", result.CodeTooLong,
				"request body must not exceed %d bytes", tooLarge.Limit)}
		}
		return []result.Error{result.Validation("body", result.CodeInvalidFormat, "request body must be valid JSON")}
	}
	return nil
}

// bindQuery binds the query parameter name into dest using the form style.
// Optional parameters take a pointer to a pointer, which stays nil when the
// parameter is missing.
func bindQuery(q url.Values, name string, required bool, dest any) []result.Error {
	if required && !q.Has(name) {
		return []result.Error{result.Validation(name, result.CodeRequired, "%s is required", name)}
	}
	if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
		return []result.Error{result.Validation(name, result.CodeInvalidFormat, "%s", invalidParam(name, dest))}
	}
	return nil
}

func invalidParam(name string, dest any) string {
	switch dest.(type) {
	case **int, *int:
		return fmt.Sprintf("%s must be an integer", name)
	case *time.Time:
		return fmt.Sprintf("%s must be an RFC 3339 timestamp", name)
	default:
		return fmt.Sprintf("%s has an invalid format", name)
	}
}
