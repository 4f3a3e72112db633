// Package result provides the Result type returned by every fallible
// operation in PromptJourney, together with the layered Error record.
//
// A Result is in exactly one of three states:
//   - success: carries a value and no errors
//   - failure: carries one or more Errors in insertion order
//   - canceled: the operation was abandoned because its context was canceled
//
// Results are values and are never mutated after construction; every
// combinator returns a new Result.
package result

import (
	"errors"
	"fmt"
)

// Unit is the value of a Result that carries no data.
type Unit struct{}

type state uint8

const (
	stateOK state = iota + 1
	stateFailed
	stateCanceled
)

// Result carries either a success value, a list of failures, or a
// cancellation cause. The zero value is not a valid Result.
type Result[T any] struct {
	value  T
	errs   []Error
	cause  error
	status state
}

// Ok creates a successful result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, status: stateOK}
}

// Fail creates a failed result from one or more errors.
func Fail[T any](first Error, rest ...Error) Result[T] {
	errs := make([]Error, 0, 1+len(rest))
	errs = append(errs, first)
	errs = append(errs, rest...)
	return Result[T]{errs: errs, status: stateFailed}
}

// FailAll creates a failed result from errs. It panics if errs is empty,
// since a failure without errors cannot be reported to anyone.
func FailAll[T any](errs []Error) Result[T] {
	if len(errs) == 0 {
		panic("result.FailAll: no errors")
	}
	return Result[T]{errs: append([]Error(nil), errs...), status: stateFailed}
}

// Canceled creates a result for an operation abandoned because its context
// was canceled or timed out. cause is normally ctx.Err().
func Canceled[T any](cause error) Result[T] {
	if cause == nil {
		cause = errors.New("operation canceled")
	}
	return Result[T]{cause: cause, status: stateCanceled}
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.status == stateOK
}

// IsFailure reports whether the result does not hold a value. Canceled
// results are failures too; use IsCanceled to tell them apart.
func (r Result[T]) IsFailure() bool {
	return r.status != stateOK
}

// IsCanceled reports whether the operation was canceled.
func (r Result[T]) IsCanceled() bool {
	return r.status == stateCanceled
}

// Value returns the success value.
// It panics when called on a failed or canceled result: callers must check
// IsFailure first.
func (r Result[T]) Value() T {
	if r.status != stateOK {
		panic(fmt.Sprintf("result.Value: called on non-success result: %v", r.Err()))
	}
	return r.value
}

// Errors returns a copy of the failure errors in insertion order.
// It is empty for successful and canceled results.
func (r Result[T]) Errors() []Error {
	if len(r.errs) == 0 {
		return nil
	}
	return append([]Error(nil), r.errs...)
}

// Cause returns the cancellation cause, or nil if the result is not canceled.
func (r Result[T]) Cause() error {
	return r.cause
}

// Err returns the result as a Go error: nil on success, the joined errors
// on failure and the cancellation cause when canceled.
func (r Result[T]) Err() error {
	switch r.status {
	case stateOK:
		return nil
	case stateCanceled:
		return r.cause
	case stateFailed:
		errs := make([]error, len(r.errs))
		for i, e := range r.errs {
			errs[i] = e
		}
		return errors.Join(errs...)
	default:
		return errors.New("result: uninitialized")
	}
}

// HasLayer reports whether any failure error belongs to layer.
func (r Result[T]) HasLayer(layer Layer) bool {
	for _, e := range r.errs {
		if e.Layer == layer {
			return true
		}
	}
	return false
}

// HasCode reports whether any failure error carries code.
func (r Result[T]) HasCode(code Code) bool {
	for _, e := range r.errs {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Propagate re-types a non-success result, keeping its errors or cause.
// It panics on a successful result: there is no U value to carry.
func Propagate[T, U any](r Result[T]) Result[U] {
	switch r.status {
	case stateFailed:
		return Result[U]{errs: r.errs, status: stateFailed}
	case stateCanceled:
		return Result[U]{cause: r.cause, status: stateCanceled}
	default:
		panic("result.Propagate: called on success result")
	}
}

// Map applies fn to the value of a successful result.
// Failures and cancellations are carried through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsFailure() {
		return Propagate[T, U](r)
	}
	return Ok(fn(r.value))
}

// Bind chains a result-returning operation onto a successful result.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsFailure() {
		return Propagate[T, U](r)
	}
	return fn(r.value)
}

// Discard drops the value of r, keeping only its outcome.
func Discard[T any](r Result[T]) Result[Unit] {
	return Map(r, func(T) Unit { return Unit{} })
}
