// Package workflow threads a single result through a sequence of fallible
// steps. Once any step fails, no later step runs and the failure is what the
// pipeline finally returns.
//
// A typical application operation reads as:
//
//	p := workflow.From(ctx, domain.ParseStyle(in))
//	p = p.Ensure(styleDoesNotExist)
//	saved := workflow.ExecuteIfNoErrors(p, repo.Add)
//	return workflow.MapResult(saved, toResponse).Result()
//
// Steps run strictly in the order they are registered, one at a time. A
// Pipeline belongs to one call stack and must not be shared.
package workflow

import (
	"context"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// Pipeline wraps the result in flight. It is pending while the result is a
// success and short-circuited once it is a failure or a cancellation.
type Pipeline[T any] struct {
	ctx   context.Context
	state result.Result[T]
}

// Empty starts a pending pipeline carrying no value.
func Empty(ctx context.Context) *Pipeline[result.Unit] {
	return From(ctx, result.Ok(result.Unit{}))
}

// From starts a pipeline in whatever state initial represents.
func From[T any](ctx context.Context, initial result.Result[T]) *Pipeline[T] {
	return &Pipeline[T]{ctx: ctx, state: initial}
}

// IsShortCircuited reports whether a previous step failed.
func (p *Pipeline[T]) IsShortCircuited() bool {
	return p.state.IsFailure()
}

// Result unwraps the pipeline into its terminal result.
func (p *Pipeline[T]) Result() result.Result[T] {
	return p.state
}

// ExecuteIfNoErrors runs step with the current value and makes its result
// the new state. The step is not invoked when the pipeline has already
// short-circuited, or when the context is done; the latter turns the
// pipeline into a canceled result.
func ExecuteIfNoErrors[T, U any](p *Pipeline[T], step func(context.Context, T) result.Result[U]) *Pipeline[U] {
	if p.state.IsFailure() {
		return &Pipeline[U]{ctx: p.ctx, state: result.Propagate[T, U](p.state)}
	}
	if err := p.ctx.Err(); err != nil {
		return &Pipeline[U]{ctx: p.ctx, state: result.Canceled[U](err)}
	}
	return &Pipeline[U]{ctx: p.ctx, state: step(p.ctx, p.state.Value())}
}

// ExecuteIf runs step only when the pipeline is pending and cond holds for
// the current value. Otherwise the state is carried forward unchanged.
func ExecuteIf[T any](p *Pipeline[T], cond func(T) bool, step func(context.Context, T) result.Result[T]) *Pipeline[T] {
	if p.state.IsFailure() || !cond(p.state.Value()) {
		return p
	}
	return ExecuteIfNoErrors(p, step)
}

// Ensure runs a guard against the current value. On success the pipeline
// keeps its value; on failure it short-circuits with the guard's errors.
func (p *Pipeline[T]) Ensure(check func(context.Context, T) result.Result[result.Unit]) *Pipeline[T] {
	return ExecuteIfNoErrors(p, func(ctx context.Context, v T) result.Result[T] {
		return result.Map(check(ctx, v), func(result.Unit) T { return v })
	})
}

// MapResult applies a pure transform to the current value. It is never
// invoked once the pipeline has short-circuited.
func MapResult[T, U any](p *Pipeline[T], transform func(T) U) *Pipeline[U] {
	return &Pipeline[U]{ctx: p.ctx, state: result.Map(p.state, transform)}
}
