// Package repo contains all database access for the PromptJourney API.
// Each aggregate has its own file with an interface and a Postgres
// implementation. Errors are plain Go errors inside this package and are
// converted to result.Result values on the way out by observe.
package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/domain"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Postgres error codes the boundary translates.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// SlowQueryThreshold is the duration above which a successful operation is
// logged as slow.
const SlowQueryThreshold = 100 * time.Millisecond

var (
	opDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "promptjourney",
			Subsystem: "db",
			Name:      "operation_duration_seconds",
			Help:      "Database operation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"table", "operation"},
	)

	opTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "promptjourney",
			Subsystem: "db",
			Name:      "operations_total",
			Help:      "Database operations by outcome",
		},
		[]string{"table", "operation", "outcome"},
	)
)

var tracer = otel.Tracer("github.com/PawelJakubczyk/PromptJourney-sub000/internal/repo")

// entity describes the table an operation touches and how to name its rows
// in error messages. unique maps the table's secondary unique constraints to
// the column they guard; a violation of the primary key needs no entry.
type entity struct {
	table  string
	noun   string
	unique map[string]string
}

var (
	styles   = entity{table: "styles", noun: "style"}
	versions = entity{
		table:  "versions",
		noun:   "version",
		unique: map[string]string{"versions_parameter_key": "parameter"},
	}
	properties    = entity{table: "properties", noun: "property"}
	promptHistory = entity{table: "prompt_history", noun: "prompt history record"}
)

// observe runs fn with metrics, tracing and logging around it, then settles
// its outcome into a result. key identifies the row(s) in error messages.
func observe[T any](ctx context.Context, e entity, op, key string, fn func(ctx context.Context) (T, error)) result.Result[T] {
	ctx, span := tracer.Start(ctx, e.table+"."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.sql.table", e.table),
		))
	defer span.End()

	start := time.Now()
	v, err := fn(ctx)
	elapsed := time.Since(start)

	r := settle[T](e, key, v, err)
	outcome := outcomeOf(r)

	opDuration.WithLabelValues(e.table, op).Observe(elapsed.Seconds())
	opTotal.WithLabelValues(e.table, op, outcome).Inc()

	switch {
	case r.HasLayer(result.LayerPersistence):
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		slog.ErrorContext(ctx, "database operation failed",
			"table", e.table,
			"operation", op,
			"duration_ms", elapsed.Milliseconds(),
			"error", err)
	case err != nil:
		span.SetStatus(codes.Error, outcome)
	case elapsed > SlowQueryThreshold:
		slog.WarnContext(ctx, "slow database operation",
			"table", e.table,
			"operation", op,
			"duration_ms", elapsed.Milliseconds())
	}
	return r
}

// settle converts a repository error into the result kernel's vocabulary.
// Vendor error text never reaches the returned messages.
func settle[T any](e entity, key string, v T, err error) result.Result[T] {
	if err == nil {
		return result.Ok(v)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return result.Canceled[T](err)
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, pgx.ErrNoRows) {
		return result.Fail[T](result.NotFound("%s %q not found", e.noun, key))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if column, ok := e.unique[pgErr.ConstraintName]; ok {
				return result.Fail[T](result.AlreadyExists("another %s already uses this %s", e.noun, column))
			}
			return result.Fail[T](result.AlreadyExists("%s %q already exists", e.noun, key))
		case pgForeignKeyViolation:
			return result.Fail[T](result.NotFound("%s %q refers to a record that does not exist", e.noun, key))
		}
	}
	return result.Fail[T](result.Persistence("%s storage failed", e.noun))
}

func outcomeOf[T any](r result.Result[T]) string {
	switch {
	case r.IsSuccess():
		return "success"
	case r.IsCanceled():
		return "canceled"
	case r.HasLayer(result.LayerPersistence):
		return "error"
	case r.HasCode(result.CodeNotFound):
		return "not_found"
	default:
		return "conflict"
	}
}

// rehydrate turns a failed domain construction of a stored row into an
// ErrCorruptRow error.
func rehydrate[T any](r result.Result[T]) (T, error) {
	if r.IsSuccess() {
		return r.Value(), nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %w", domain.ErrCorruptRow, r.Err())
}

// collect scans every row with scan. The returned slice is never nil.
func collect[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
