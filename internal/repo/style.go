package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// StyleRepo defines the persistence operations for Styles.
type StyleRepo interface {
	// Add inserts a new style. Fails with ALREADY_EXISTS when the name is taken.
	Add(ctx context.Context, s domain.Style) result.Result[domain.Style]

	// Get returns the style with the given name, or NOT_FOUND.
	Get(ctx context.Context, name domain.StyleName) result.Result[domain.Style]

	Exists(ctx context.Context, name domain.StyleName) result.Result[bool]

	// List returns all styles ordered by name.
	List(ctx context.Context) result.Result[[]domain.Style]

	// ListByType returns the styles of one type ordered by name.
	ListByType(ctx context.Context, typ domain.StyleType) result.Result[[]domain.Style]

	// ListByTags returns the styles carrying every one of tags.
	ListByTags(ctx context.Context, tags []domain.Tag) result.Result[[]domain.Style]

	// Update overwrites the mutable fields of an existing style.
	Update(ctx context.Context, s domain.Style) result.Result[domain.Style]

	Delete(ctx context.Context, name domain.StyleName) result.Result[result.Unit]
}

type pgStyleRepo struct {
	db db
}

// NewStyleRepo constructs a StyleRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStyleRepo(db db) StyleRepo {
	return &pgStyleRepo{db: db}
}

const styleColumns = `name, type, description, tags`

func (r *pgStyleRepo) Add(ctx context.Context, s domain.Style) result.Result[domain.Style] {
	const q = `
		INSERT INTO styles (name, type, description, tags)
		VALUES (@name, @type, @description, @tags)
		RETURNING ` + styleColumns

	return observe(ctx, styles, "Add", s.Name().Value(), func(ctx context.Context) (domain.Style, error) {
		got, err := scanStyle(r.db.QueryRow(ctx, q, styleArgs(s)))
		if err != nil {
			return domain.Style{}, fmt.Errorf("repo.StyleRepo.Add: %w", err)
		}
		return got, nil
	})
}

func (r *pgStyleRepo) Get(ctx context.Context, name domain.StyleName) result.Result[domain.Style] {
	const q = `SELECT ` + styleColumns + ` FROM styles WHERE name = @name`

	return observe(ctx, styles, "Get", name.Value(), func(ctx context.Context) (domain.Style, error) {
		got, err := scanStyle(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name.Value()}))
		if err != nil {
			return domain.Style{}, fmt.Errorf("repo.StyleRepo.Get: %w", err)
		}
		return got, nil
	})
}

func (r *pgStyleRepo) Exists(ctx context.Context, name domain.StyleName) result.Result[bool] {
	const q = `SELECT EXISTS (SELECT 1 FROM styles WHERE name = @name)`

	return observe(ctx, styles, "Exists", name.Value(), func(ctx context.Context) (bool, error) {
		var exists bool
		if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name.Value()}).Scan(&exists); err != nil {
			return false, fmt.Errorf("repo.StyleRepo.Exists: %w", err)
		}
		return exists, nil
	})
}

func (r *pgStyleRepo) List(ctx context.Context) result.Result[[]domain.Style] {
	const q = `SELECT ` + styleColumns + ` FROM styles ORDER BY name`

	return observe(ctx, styles, "List", "*", func(ctx context.Context) ([]domain.Style, error) {
		return r.query(ctx, "List", q, nil)
	})
}

func (r *pgStyleRepo) ListByType(ctx context.Context, typ domain.StyleType) result.Result[[]domain.Style] {
	const q = `SELECT ` + styleColumns + ` FROM styles WHERE type = @type ORDER BY name`

	return observe(ctx, styles, "ListByType", typ.Value(), func(ctx context.Context) ([]domain.Style, error) {
		return r.query(ctx, "ListByType", q, pgx.NamedArgs{"type": typ.Value()})
	})
}

func (r *pgStyleRepo) ListByTags(ctx context.Context, tags []domain.Tag) result.Result[[]domain.Style] {
	const q = `SELECT ` + styleColumns + ` FROM styles WHERE tags @> @tags::text[] ORDER BY name`

	values := tagValues(tags)
	return observe(ctx, styles, "ListByTags", strings.Join(values, ","), func(ctx context.Context) ([]domain.Style, error) {
		return r.query(ctx, "ListByTags", q, pgx.NamedArgs{"tags": values})
	})
}

func (r *pgStyleRepo) Update(ctx context.Context, s domain.Style) result.Result[domain.Style] {
	const q = `
		UPDATE styles
		SET type        = @type,
		    description = @description,
		    tags        = @tags,
		    updated_at  = now()
		WHERE name = @name
		RETURNING ` + styleColumns

	return observe(ctx, styles, "Update", s.Name().Value(), func(ctx context.Context) (domain.Style, error) {
		got, err := scanStyle(r.db.QueryRow(ctx, q, styleArgs(s)))
		if err != nil {
			return domain.Style{}, fmt.Errorf("repo.StyleRepo.Update: %w", err)
		}
		return got, nil
	})
}

func (r *pgStyleRepo) Delete(ctx context.Context, name domain.StyleName) result.Result[result.Unit] {
	const q = `DELETE FROM styles WHERE name = @name`

	return observe(ctx, styles, "Delete", name.Value(), func(ctx context.Context) (result.Unit, error) {
		tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"name": name.Value()})
		if err != nil {
			return result.Unit{}, fmt.Errorf("repo.StyleRepo.Delete: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return result.Unit{}, fmt.Errorf("repo.StyleRepo.Delete: %w", domain.ErrNotFound)
		}
		return result.Unit{}, nil
	})
}

func (r *pgStyleRepo) query(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.Style, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.StyleRepo.%s: %w", op, err)
	}
	out, err := collect(rows, scanStyle)
	if err != nil {
		return nil, fmt.Errorf("repo.StyleRepo.%s: %w", op, err)
	}
	return out, nil
}

func styleArgs(s domain.Style) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":        s.Name().Value(),
		"type":        s.Type().Value(),
		"description": descriptionArg(s.Description()), // nil becomes NULL
		"tags":        tagValues(s.Tags()),
	}
}

func tagValues(tags []domain.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Value()
	}
	return out
}

// scanStyle maps a row into a domain.Style, validating it on the way.
func scanStyle(s scanner) (domain.Style, error) {
	var in domain.StyleInput
	if err := s.Scan(&in.Name, &in.Type, &in.Description, &in.Tags); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Style{}, domain.ErrNotFound
		}
		return domain.Style{}, err
	}
	return rehydrate(domain.ParseStyle(in))
}
