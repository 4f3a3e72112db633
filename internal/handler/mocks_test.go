package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/handler"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/service"
)

// Test doubles for the servicer interfaces. Set only the fields a test needs.

type mockStyles struct {
	create            func(ctx context.Context, in domain.StyleInput) result.Result[service.StyleResponse]
	get               func(ctx context.Context, name string) result.Result[service.StyleResponse]
	list              func(ctx context.Context, f service.StyleFilter) result.Result[[]service.StyleResponse]
	updateDescription func(ctx context.Context, name string, d *string) result.Result[service.StyleResponse]
	addTag            func(ctx context.Context, name, tag string) result.Result[service.StyleResponse]
	removeTag         func(ctx context.Context, name, tag string) result.Result[service.StyleResponse]
	delete            func(ctx context.Context, name string) result.Result[result.Unit]
}

func (m *mockStyles) Create(ctx context.Context, in domain.StyleInput) result.Result[service.StyleResponse] {
	return m.create(ctx, in)
}
func (m *mockStyles) Get(ctx context.Context, name string) result.Result[service.StyleResponse] {
	return m.get(ctx, name)
}
func (m *mockStyles) List(ctx context.Context, f service.StyleFilter) result.Result[[]service.StyleResponse] {
	return m.list(ctx, f)
}
func (m *mockStyles) UpdateDescription(ctx context.Context, name string, d *string) result.Result[service.StyleResponse] {
	return m.updateDescription(ctx, name, d)
}
func (m *mockStyles) AddTag(ctx context.Context, name, tag string) result.Result[service.StyleResponse] {
	return m.addTag(ctx, name, tag)
}
func (m *mockStyles) RemoveTag(ctx context.Context, name, tag string) result.Result[service.StyleResponse] {
	return m.removeTag(ctx, name, tag)
}
func (m *mockStyles) Delete(ctx context.Context, name string) result.Result[result.Unit] {
	return m.delete(ctx, name)
}

var _ handler.StyleServicer = (*mockStyles)(nil)

type mockVersions struct {
	create    func(ctx context.Context, in domain.VersionInput) result.Result[service.VersionResponse]
	get       func(ctx context.Context, v string) result.Result[service.VersionResponse]
	list      func(ctx context.Context) result.Result[[]service.VersionResponse]
	supported func(ctx context.Context) result.Result[[]string]
	delete    func(ctx context.Context, v string) result.Result[result.Unit]
}

func (m *mockVersions) Create(ctx context.Context, in domain.VersionInput) result.Result[service.VersionResponse] {
	return m.create(ctx, in)
}
func (m *mockVersions) Get(ctx context.Context, v string) result.Result[service.VersionResponse] {
	return m.get(ctx, v)
}
func (m *mockVersions) List(ctx context.Context) result.Result[[]service.VersionResponse] {
	return m.list(ctx)
}
func (m *mockVersions) Supported(ctx context.Context) result.Result[[]string] {
	return m.supported(ctx)
}
func (m *mockVersions) Delete(ctx context.Context, v string) result.Result[result.Unit] {
	return m.delete(ctx, v)
}

var _ handler.VersionServicer = (*mockVersions)(nil)

type mockProperties struct {
	create        func(ctx context.Context, in domain.PropertyInput) result.Result[service.PropertyResponse]
	get           func(ctx context.Context, v, n string) result.Result[service.PropertyResponse]
	listByVersion func(ctx context.Context, v string) result.Result[[]service.PropertyResponse]
	patch         func(ctx context.Context, v, n, field string, value *string) result.Result[service.PropertyResponse]
	delete        func(ctx context.Context, v, n string) result.Result[result.Unit]
}

func (m *mockProperties) Create(ctx context.Context, in domain.PropertyInput) result.Result[service.PropertyResponse] {
	return m.create(ctx, in)
}
func (m *mockProperties) Get(ctx context.Context, v, n string) result.Result[service.PropertyResponse] {
	return m.get(ctx, v, n)
}
func (m *mockProperties) ListByVersion(ctx context.Context, v string) result.Result[[]service.PropertyResponse] {
	return m.listByVersion(ctx, v)
}
func (m *mockProperties) Patch(ctx context.Context, v, n, field string, value *string) result.Result[service.PropertyResponse] {
	return m.patch(ctx, v, n, field, value)
}
func (m *mockProperties) Delete(ctx context.Context, v, n string) result.Result[result.Unit] {
	return m.delete(ctx, v, n)
}

var _ handler.PropertyServicer = (*mockProperties)(nil)

type mockHistory struct {
	add             func(ctx context.Context, in domain.PromptHistoryInput) result.Result[service.HistoryResponse]
	list            func(ctx context.Context, page, limit *int) result.Result[service.HistoryPage]
	listByDateRange func(ctx context.Context, from, to time.Time) result.Result[[]service.HistoryResponse]
	listByKeyword   func(ctx context.Context, keyword string) result.Result[[]service.HistoryResponse]
	count           func(ctx context.Context) result.Result[int64]
}

func (m *mockHistory) Add(ctx context.Context, in domain.PromptHistoryInput) result.Result[service.HistoryResponse] {
	return m.add(ctx, in)
}
func (m *mockHistory) List(ctx context.Context, page, limit *int) result.Result[service.HistoryPage] {
	return m.list(ctx, page, limit)
}
func (m *mockHistory) ListByDateRange(ctx context.Context, from, to time.Time) result.Result[[]service.HistoryResponse] {
	return m.listByDateRange(ctx, from, to)
}
func (m *mockHistory) ListByKeyword(ctx context.Context, keyword string) result.Result[[]service.HistoryResponse] {
	return m.listByKeyword(ctx, keyword)
}
func (m *mockHistory) Count(ctx context.Context) result.Result[int64] {
	return m.count(ctx)
}

var _ handler.HistoryServicer = (*mockHistory)(nil)

// ---- helpers ---------------------------------------------------------------

// servers bundles the mocks; nil fields are replaced with empty mocks.
type servers struct {
	styles     *mockStyles
	versions   *mockVersions
	properties *mockProperties
	history    *mockHistory
}

func newHTTPHandler(s servers) http.Handler {
	if s.styles == nil {
		s.styles = &mockStyles{}
	}
	if s.versions == nil {
		s.versions = &mockVersions{}
	}
	if s.properties == nil {
		s.properties = &mockProperties{}
	}
	if s.history == nil {
		s.history = &mockHistory{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(s.styles, s.versions, s.properties, s.history, log).Routes()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func ptr[T any](v T) *T { return &v }
