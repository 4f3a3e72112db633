package repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// HistoryRepo defines the persistence operations for prompt history.
// Every listing is ordered newest first.
type HistoryRepo interface {
	// Add inserts a record and returns it with its id and timestamp set.
	Add(ctx context.Context, h domain.PromptHistory) result.Result[domain.PromptHistory]

	ListPaged(ctx context.Context, p domain.PaginationParams) result.Result[domain.Page[domain.PromptHistory]]

	// ListByDateRange returns the records created within r, bounds included.
	ListByDateRange(ctx context.Context, r domain.DateRange) result.Result[[]domain.PromptHistory]

	// ListByKeyword returns the records whose prompt contains k, ignoring case.
	ListByKeyword(ctx context.Context, k domain.Keyword) result.Result[[]domain.PromptHistory]

	Count(ctx context.Context) result.Result[int64]
}

type pgHistoryRepo struct {
	db db
}

// NewHistoryRepo constructs a HistoryRepo backed by the provided db connection.
func NewHistoryRepo(db db) HistoryRepo {
	return &pgHistoryRepo{db: db}
}

const historyColumns = `id, prompt, version, created_on`

func (r *pgHistoryRepo) Add(ctx context.Context, h domain.PromptHistory) result.Result[domain.PromptHistory] {
	const q = `
		INSERT INTO prompt_history (prompt, version)
		VALUES (@prompt, @version)
		RETURNING ` + historyColumns

	args := pgx.NamedArgs{"prompt": h.Prompt.Value(), "version": h.Version.Value()}
	return observe(ctx, promptHistory, "Add", h.Version.Value(), func(ctx context.Context) (domain.PromptHistory, error) {
		got, err := scanHistory(r.db.QueryRow(ctx, q, args))
		if err != nil {
			return domain.PromptHistory{}, fmt.Errorf("repo.HistoryRepo.Add: %w", err)
		}
		return got, nil
	})
}

func (r *pgHistoryRepo) ListPaged(ctx context.Context, p domain.PaginationParams) result.Result[domain.Page[domain.PromptHistory]] {
	const q = `
		SELECT ` + historyColumns + `
		FROM prompt_history
		ORDER BY created_on DESC, id
		LIMIT @limit OFFSET @offset`

	key := "page " + strconv.Itoa(p.Page)
	return observe(ctx, promptHistory, "ListPaged", key, func(ctx context.Context) (domain.Page[domain.PromptHistory], error) {
		page := domain.Page[domain.PromptHistory]{PaginationParams: p}

		items, err := r.query(ctx, "ListPaged", q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
		if err != nil {
			return page, err
		}
		total, err := r.count(ctx)
		if err != nil {
			return page, fmt.Errorf("repo.HistoryRepo.ListPaged: %w", err)
		}

		page.Items = items
		page.Total = total
		return page, nil
	})
}

func (r *pgHistoryRepo) ListByDateRange(ctx context.Context, dr domain.DateRange) result.Result[[]domain.PromptHistory] {
	const q = `
		SELECT ` + historyColumns + `
		FROM prompt_history
		WHERE created_on BETWEEN @from AND @to
		ORDER BY created_on DESC, id`

	key := dr.From.Format(time.RFC3339) + ".." + dr.To.Format(time.RFC3339)
	return observe(ctx, promptHistory, "ListByDateRange", key, func(ctx context.Context) ([]domain.PromptHistory, error) {
		return r.query(ctx, "ListByDateRange", q, pgx.NamedArgs{"from": dr.From, "to": dr.To})
	})
}

func (r *pgHistoryRepo) ListByKeyword(ctx context.Context, k domain.Keyword) result.Result[[]domain.PromptHistory] {
	const q = `
		SELECT ` + historyColumns + `
		FROM prompt_history
		WHERE position(lower(@keyword) in lower(prompt)) > 0
		ORDER BY created_on DESC, id`

	return observe(ctx, promptHistory, "ListByKeyword", k.Value(), func(ctx context.Context) ([]domain.PromptHistory, error) {
		return r.query(ctx, "ListByKeyword", q, pgx.NamedArgs{"keyword": k.Value()})
	})
}

func (r *pgHistoryRepo) Count(ctx context.Context) result.Result[int64] {
	return observe(ctx, promptHistory, "Count", "*", func(ctx context.Context) (int64, error) {
		n, err := r.count(ctx)
		if err != nil {
			return 0, fmt.Errorf("repo.HistoryRepo.Count: %w", err)
		}
		return n, nil
	})
}

func (r *pgHistoryRepo) count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM prompt_history`).Scan(&n)
	return n, err
}

func (r *pgHistoryRepo) query(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.PromptHistory, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.HistoryRepo.%s: %w", op, err)
	}
	out, err := collect(rows, scanHistory)
	if err != nil {
		return nil, fmt.Errorf("repo.HistoryRepo.%s: %w", op, err)
	}
	return out, nil
}

// scanHistory maps a row into a domain.PromptHistory, validating it on the way.
func scanHistory(s scanner) (domain.PromptHistory, error) {
	var (
		id pgtype.UUID
		in domain.PromptHistoryInput
		at pgtype.Timestamptz
	)
	if err := s.Scan(&id, &in.Prompt, &in.Version, &at); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PromptHistory{}, domain.ErrNotFound
		}
		return domain.PromptHistory{}, err
	}

	h, err := rehydrate(domain.ParsePromptHistory(in))
	if err != nil {
		return domain.PromptHistory{}, err
	}
	h.ID = uuid.UUID(id.Bytes)
	h.CreatedOn = at.Time
	return h, nil
}
