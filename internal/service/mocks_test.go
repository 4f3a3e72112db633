package service_test

import (
	"context"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/repo"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs.

type mockStyleRepo struct {
	add        func(ctx context.Context, s domain.Style) result.Result[domain.Style]
	get        func(ctx context.Context, name domain.StyleName) result.Result[domain.Style]
	exists     func(ctx context.Context, name domain.StyleName) result.Result[bool]
	list       func(ctx context.Context) result.Result[[]domain.Style]
	listByType func(ctx context.Context, typ domain.StyleType) result.Result[[]domain.Style]
	listByTags func(ctx context.Context, tags []domain.Tag) result.Result[[]domain.Style]
	update     func(ctx context.Context, s domain.Style) result.Result[domain.Style]
	delete     func(ctx context.Context, name domain.StyleName) result.Result[result.Unit]
}

func (m *mockStyleRepo) Add(ctx context.Context, s domain.Style) result.Result[domain.Style] {
	return m.add(ctx, s)
}
func (m *mockStyleRepo) Get(ctx context.Context, name domain.StyleName) result.Result[domain.Style] {
	return m.get(ctx, name)
}
func (m *mockStyleRepo) Exists(ctx context.Context, name domain.StyleName) result.Result[bool] {
	return m.exists(ctx, name)
}
func (m *mockStyleRepo) List(ctx context.Context) result.Result[[]domain.Style] {
	return m.list(ctx)
}
func (m *mockStyleRepo) ListByType(ctx context.Context, typ domain.StyleType) result.Result[[]domain.Style] {
	return m.listByType(ctx, typ)
}
func (m *mockStyleRepo) ListByTags(ctx context.Context, tags []domain.Tag) result.Result[[]domain.Style] {
	return m.listByTags(ctx, tags)
}
func (m *mockStyleRepo) Update(ctx context.Context, s domain.Style) result.Result[domain.Style] {
	return m.update(ctx, s)
}
func (m *mockStyleRepo) Delete(ctx context.Context, name domain.StyleName) result.Result[result.Unit] {
	return m.delete(ctx, name)
}

var _ repo.StyleRepo = (*mockStyleRepo)(nil)

type mockVersionRepo struct {
	add    func(ctx context.Context, v domain.Version) result.Result[domain.Version]
	get    func(ctx context.Context, v domain.ModelVersion) result.Result[domain.Version]
	exists func(ctx context.Context, v domain.ModelVersion) result.Result[bool]
	list   func(ctx context.Context) result.Result[[]domain.Version]
	delete func(ctx context.Context, v domain.ModelVersion) result.Result[result.Unit]
}

func (m *mockVersionRepo) Add(ctx context.Context, v domain.Version) result.Result[domain.Version] {
	return m.add(ctx, v)
}
func (m *mockVersionRepo) Get(ctx context.Context, v domain.ModelVersion) result.Result[domain.Version] {
	return m.get(ctx, v)
}
func (m *mockVersionRepo) Exists(ctx context.Context, v domain.ModelVersion) result.Result[bool] {
	return m.exists(ctx, v)
}
func (m *mockVersionRepo) List(ctx context.Context) result.Result[[]domain.Version] {
	return m.list(ctx)
}
func (m *mockVersionRepo) Delete(ctx context.Context, v domain.ModelVersion) result.Result[result.Unit] {
	return m.delete(ctx, v)
}

var _ repo.VersionRepo = (*mockVersionRepo)(nil)

type mockPropertyRepo struct {
	add           func(ctx context.Context, p domain.Property) result.Result[domain.Property]
	get           func(ctx context.Context, v domain.ModelVersion, n domain.PropertyName) result.Result[domain.Property]
	exists        func(ctx context.Context, v domain.ModelVersion, n domain.PropertyName) result.Result[bool]
	listByVersion func(ctx context.Context, v domain.ModelVersion) result.Result[[]domain.Property]
	update        func(ctx context.Context, p domain.Property) result.Result[domain.Property]
	delete        func(ctx context.Context, v domain.ModelVersion, n domain.PropertyName) result.Result[result.Unit]
}

func (m *mockPropertyRepo) Add(ctx context.Context, p domain.Property) result.Result[domain.Property] {
	return m.add(ctx, p)
}
func (m *mockPropertyRepo) Get(ctx context.Context, v domain.ModelVersion, n domain.PropertyName) result.Result[domain.Property] {
	return m.get(ctx, v, n)
}
func (m *mockPropertyRepo) Exists(ctx context.Context, v domain.ModelVersion, n domain.PropertyName) result.Result[bool] {
	return m.exists(ctx, v, n)
}
func (m *mockPropertyRepo) ListByVersion(ctx context.Context, v domain.ModelVersion) result.Result[[]domain.Property] {
	return m.listByVersion(ctx, v)
}
func (m *mockPropertyRepo) Update(ctx context.Context, p domain.Property) result.Result[domain.Property] {
	return m.update(ctx, p)
}
func (m *mockPropertyRepo) Delete(ctx context.Context, v domain.ModelVersion, n domain.PropertyName) result.Result[result.Unit] {
	return m.delete(ctx, v, n)
}

var _ repo.PropertyRepo = (*mockPropertyRepo)(nil)

type mockHistoryRepo struct {
	add             func(ctx context.Context, h domain.PromptHistory) result.Result[domain.PromptHistory]
	listPaged       func(ctx context.Context, p domain.PaginationParams) result.Result[domain.Page[domain.PromptHistory]]
	listByDateRange func(ctx context.Context, r domain.DateRange) result.Result[[]domain.PromptHistory]
	listByKeyword   func(ctx context.Context, k domain.Keyword) result.Result[[]domain.PromptHistory]
	count           func(ctx context.Context) result.Result[int64]
}

func (m *mockHistoryRepo) Add(ctx context.Context, h domain.PromptHistory) result.Result[domain.PromptHistory] {
	return m.add(ctx, h)
}
func (m *mockHistoryRepo) ListPaged(ctx context.Context, p domain.PaginationParams) result.Result[domain.Page[domain.PromptHistory]] {
	return m.listPaged(ctx, p)
}
func (m *mockHistoryRepo) ListByDateRange(ctx context.Context, r domain.DateRange) result.Result[[]domain.PromptHistory] {
	return m.listByDateRange(ctx, r)
}
func (m *mockHistoryRepo) ListByKeyword(ctx context.Context, k domain.Keyword) result.Result[[]domain.PromptHistory] {
	return m.listByKeyword(ctx, k)
}
func (m *mockHistoryRepo) Count(ctx context.Context) result.Result[int64] {
	return m.count(ctx)
}

var _ repo.HistoryRepo = (*mockHistoryRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func ok[T any](v T) result.Result[T] { return result.Ok(v) }

func echo[T any](_ context.Context, v T) result.Result[T] { return result.Ok(v) }

func exists(b bool) func(context.Context, domain.ModelVersion) result.Result[bool] {
	return func(context.Context, domain.ModelVersion) result.Result[bool] { return result.Ok(b) }
}

func dbDown[T any]() result.Result[T] {
	return result.Fail[T](result.Persistence("storage failed"))
}
