package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// PropertyRepo defines the persistence operations for version Properties.
// A property is addressed by its version and name.
type PropertyRepo interface {
	// Add inserts a new property. Fails with NOT_FOUND when the version does
	// not exist and ALREADY_EXISTS when the property does.
	Add(ctx context.Context, p domain.Property) result.Result[domain.Property]

	Get(ctx context.Context, version domain.ModelVersion, name domain.PropertyName) result.Result[domain.Property]
	Exists(ctx context.Context, version domain.ModelVersion, name domain.PropertyName) result.Result[bool]

	// ListByVersion returns the properties of one version ordered by name.
	ListByVersion(ctx context.Context, version domain.ModelVersion) result.Result[[]domain.Property]

	Update(ctx context.Context, p domain.Property) result.Result[domain.Property]
	Delete(ctx context.Context, version domain.ModelVersion, name domain.PropertyName) result.Result[result.Unit]
}

type pgPropertyRepo struct {
	db db
}

// NewPropertyRepo constructs a PropertyRepo backed by the provided db connection.
func NewPropertyRepo(db db) PropertyRepo {
	return &pgPropertyRepo{db: db}
}

const propertyColumns = `version, name, parameters, default_value, min_value, max_value, description`

func propertyKey(version domain.ModelVersion, name domain.PropertyName) string {
	return version.Value() + "/" + name.Value()
}

func (r *pgPropertyRepo) Add(ctx context.Context, p domain.Property) result.Result[domain.Property] {
	const q = `
		INSERT INTO properties (version, name, parameters, default_value, min_value, max_value, description)
		VALUES (@version, @name, @parameters, @default_value, @min_value, @max_value, @description)
		RETURNING ` + propertyColumns

	return observe(ctx, properties, "Add", propertyKey(p.Version(), p.Name()), func(ctx context.Context) (domain.Property, error) {
		got, err := scanProperty(r.db.QueryRow(ctx, q, propertyArgs(p)))
		if err != nil {
			return domain.Property{}, fmt.Errorf("repo.PropertyRepo.Add: %w", err)
		}
		return got, nil
	})
}

func (r *pgPropertyRepo) Get(ctx context.Context, version domain.ModelVersion, name domain.PropertyName) result.Result[domain.Property] {
	const q = `SELECT ` + propertyColumns + ` FROM properties WHERE version = @version AND name = @name`

	args := pgx.NamedArgs{"version": version.Value(), "name": name.Value()}
	return observe(ctx, properties, "Get", propertyKey(version, name), func(ctx context.Context) (domain.Property, error) {
		got, err := scanProperty(r.db.QueryRow(ctx, q, args))
		if err != nil {
			return domain.Property{}, fmt.Errorf("repo.PropertyRepo.Get: %w", err)
		}
		return got, nil
	})
}

func (r *pgPropertyRepo) Exists(ctx context.Context, version domain.ModelVersion, name domain.PropertyName) result.Result[bool] {
	const q = `SELECT EXISTS (SELECT 1 FROM properties WHERE version = @version AND name = @name)`

	args := pgx.NamedArgs{"version": version.Value(), "name": name.Value()}
	return observe(ctx, properties, "Exists", propertyKey(version, name), func(ctx context.Context) (bool, error) {
		var exists bool
		if err := r.db.QueryRow(ctx, q, args).Scan(&exists); err != nil {
			return false, fmt.Errorf("repo.PropertyRepo.Exists: %w", err)
		}
		return exists, nil
	})
}

func (r *pgPropertyRepo) ListByVersion(ctx context.Context, version domain.ModelVersion) result.Result[[]domain.Property] {
	const q = `SELECT ` + propertyColumns + ` FROM properties WHERE version = @version ORDER BY name`

	return observe(ctx, properties, "ListByVersion", version.Value(), func(ctx context.Context) ([]domain.Property, error) {
		rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"version": version.Value()})
		if err != nil {
			return nil, fmt.Errorf("repo.PropertyRepo.ListByVersion: %w", err)
		}
		out, err := collect(rows, scanProperty)
		if err != nil {
			return nil, fmt.Errorf("repo.PropertyRepo.ListByVersion: %w", err)
		}
		return out, nil
	})
}

func (r *pgPropertyRepo) Update(ctx context.Context, p domain.Property) result.Result[domain.Property] {
	const q = `
		UPDATE properties
		SET parameters    = @parameters,
		    default_value = @default_value,
		    min_value     = @min_value,
		    max_value     = @max_value,
		    description   = @description,
		    updated_at    = now()
		WHERE version = @version AND name = @name
		RETURNING ` + propertyColumns

	return observe(ctx, properties, "Update", propertyKey(p.Version(), p.Name()), func(ctx context.Context) (domain.Property, error) {
		got, err := scanProperty(r.db.QueryRow(ctx, q, propertyArgs(p)))
		if err != nil {
			return domain.Property{}, fmt.Errorf("repo.PropertyRepo.Update: %w", err)
		}
		return got, nil
	})
}

func (r *pgPropertyRepo) Delete(ctx context.Context, version domain.ModelVersion, name domain.PropertyName) result.Result[result.Unit] {
	const q = `DELETE FROM properties WHERE version = @version AND name = @name`

	args := pgx.NamedArgs{"version": version.Value(), "name": name.Value()}
	return observe(ctx, properties, "Delete", propertyKey(version, name), func(ctx context.Context) (result.Unit, error) {
		tag, err := r.db.Exec(ctx, q, args)
		if err != nil {
			return result.Unit{}, fmt.Errorf("repo.PropertyRepo.Delete: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return result.Unit{}, fmt.Errorf("repo.PropertyRepo.Delete: %w", domain.ErrNotFound)
		}
		return result.Unit{}, nil
	})
}

func propertyArgs(p domain.Property) pgx.NamedArgs {
	params := p.Parameters()
	values := make([]string, len(params))
	for i, param := range params {
		values[i] = param.Value()
	}
	return pgx.NamedArgs{
		"version":       p.Version().Value(),
		"name":          p.Name().Value(),
		"parameters":    values,
		"default_value": valueArg(p.DefaultValue()),
		"min_value":     valueArg(p.MinValue()),
		"max_value":     valueArg(p.MaxValue()),
		"description":   descriptionArg(p.Description()),
	}
}

func valueArg(v *domain.PropertyValue) *string {
	if v == nil {
		return nil
	}
	s := v.Value()
	return &s
}

// scanProperty maps a row into a domain.Property, validating it on the way.
func scanProperty(s scanner) (domain.Property, error) {
	var in domain.PropertyInput
	err := s.Scan(&in.Version, &in.Name, &in.Parameters, &in.DefaultValue, &in.MinValue, &in.MaxValue, &in.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Property{}, domain.ErrNotFound
		}
		return domain.Property{}, err
	}
	return rehydrate(domain.ParseProperty(in))
}
