package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// VersionRepo defines the persistence operations for model Versions.
type VersionRepo interface {
	// Add inserts a new version. Fails with ALREADY_EXISTS when either the
	// version or its parameter is already stored.
	Add(ctx context.Context, v domain.Version) result.Result[domain.Version]

	Get(ctx context.Context, version domain.ModelVersion) result.Result[domain.Version]
	Exists(ctx context.Context, version domain.ModelVersion) result.Result[bool]

	// List returns every stored version in storage order. Callers sort.
	List(ctx context.Context) result.Result[[]domain.Version]

	// Delete removes a version together with its properties.
	Delete(ctx context.Context, version domain.ModelVersion) result.Result[result.Unit]
}

type pgVersionRepo struct {
	db db
}

// NewVersionRepo constructs a VersionRepo backed by the provided db connection.
func NewVersionRepo(db db) VersionRepo {
	return &pgVersionRepo{db: db}
}

const versionColumns = `version, parameter, release_date, description`

func (r *pgVersionRepo) Add(ctx context.Context, v domain.Version) result.Result[domain.Version] {
	const q = `
		INSERT INTO versions (version, parameter, release_date, description)
		VALUES (@version, @parameter, @release_date, @description)
		RETURNING ` + versionColumns

	args := pgx.NamedArgs{
		"version":      v.Version().Value(),
		"parameter":    v.Parameter().Value(),
		"release_date": releaseDateArg(v.ReleaseDate()),
		"description":  descriptionArg(v.Description()),
	}

	return observe(ctx, versions, "Add", v.Version().Value(), func(ctx context.Context) (domain.Version, error) {
		got, err := scanVersion(r.db.QueryRow(ctx, q, args))
		if err != nil {
			return domain.Version{}, fmt.Errorf("repo.VersionRepo.Add: %w", err)
		}
		return got, nil
	})
}

func (r *pgVersionRepo) Get(ctx context.Context, version domain.ModelVersion) result.Result[domain.Version] {
	const q = `SELECT ` + versionColumns + ` FROM versions WHERE version = @version`

	return observe(ctx, versions, "Get", version.Value(), func(ctx context.Context) (domain.Version, error) {
		got, err := scanVersion(r.db.QueryRow(ctx, q, pgx.NamedArgs{"version": version.Value()}))
		if err != nil {
			return domain.Version{}, fmt.Errorf("repo.VersionRepo.Get: %w", err)
		}
		return got, nil
	})
}

func (r *pgVersionRepo) Exists(ctx context.Context, version domain.ModelVersion) result.Result[bool] {
	const q = `SELECT EXISTS (SELECT 1 FROM versions WHERE version = @version)`

	return observe(ctx, versions, "Exists", version.Value(), func(ctx context.Context) (bool, error) {
		var exists bool
		if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"version": version.Value()}).Scan(&exists); err != nil {
			return false, fmt.Errorf("repo.VersionRepo.Exists: %w", err)
		}
		return exists, nil
	})
}

func (r *pgVersionRepo) List(ctx context.Context) result.Result[[]domain.Version] {
	const q = `SELECT ` + versionColumns + ` FROM versions`

	return observe(ctx, versions, "List", "*", func(ctx context.Context) ([]domain.Version, error) {
		rows, err := r.db.Query(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("repo.VersionRepo.List: %w", err)
		}
		out, err := collect(rows, scanVersion)
		if err != nil {
			return nil, fmt.Errorf("repo.VersionRepo.List: %w", err)
		}
		return out, nil
	})
}

func (r *pgVersionRepo) Delete(ctx context.Context, version domain.ModelVersion) result.Result[result.Unit] {
	const q = `DELETE FROM versions WHERE version = @version`

	return observe(ctx, versions, "Delete", version.Value(), func(ctx context.Context) (result.Unit, error) {
		tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"version": version.Value()})
		if err != nil {
			return result.Unit{}, fmt.Errorf("repo.VersionRepo.Delete: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return result.Unit{}, fmt.Errorf("repo.VersionRepo.Delete: %w", domain.ErrNotFound)
		}
		return result.Unit{}, nil
	})
}

func releaseDateArg(d *domain.ReleaseDate) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Value(), Valid: true}
}

func descriptionArg(d *domain.Description) *string {
	if d == nil {
		return nil
	}
	v := d.Value()
	return &v
}

// scanVersion maps a row into a domain.Version, validating it on the way.
func scanVersion(s scanner) (domain.Version, error) {
	var (
		in          domain.VersionInput
		releaseDate pgtype.Date
	)
	if err := s.Scan(&in.Version, &in.Parameter, &releaseDate, &in.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Version{}, domain.ErrNotFound
		}
		return domain.Version{}, err
	}
	if releaseDate.Valid {
		formatted := domain.ReleaseDateOf(releaseDate.Time).String()
		in.ReleaseDate = &formatted
	}
	return rehydrate(domain.ParseVersion(in))
}
