package validate

import (
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// Outcome is satisfied by result.Result[T] for every T, which lets the
// combinators walk heterogeneous inputs in order.
type Outcome interface {
	IsFailure() bool
	IsCanceled() bool
	Errors() []result.Error
	Cause() error
}

// Collect returns the errors of every failing input, in input order.
// Successful inputs contribute nothing. Every input is inspected even after
// the first failure.
func Collect(rs ...Outcome) []result.Error {
	var errs []result.Error
	for _, r := range rs {
		errs = append(errs, r.Errors()...)
	}
	return errs
}

// settle reports how a combination of rs ends when at least one input did
// not succeed. ok is true when every input succeeded.
func settle[T any](rs ...Outcome) (failed result.Result[T], ok bool) {
	for _, r := range rs {
		if r.IsCanceled() {
			return result.Canceled[T](r.Cause()), false
		}
	}
	if errs := Collect(rs...); len(errs) > 0 {
		return result.FailAll[T](errs), false
	}
	return failed, true
}

// Tuple2 holds the unwrapped values of Combine2, in input order.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 holds the unwrapped values of Combine3, in input order.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 holds the unwrapped values of Combine4, in input order.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 holds the unwrapped values of Combine5, in input order.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Tuple6 holds the unwrapped values of Combine6, in input order.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Combine2 succeeds only if both inputs succeed. Otherwise it fails with the
// errors of every failing input.
func Combine2[A, B any](a result.Result[A], b result.Result[B]) result.Result[Tuple2[A, B]] {
	if failed, ok := settle[Tuple2[A, B]](a, b); !ok {
		return failed
	}
	return result.Ok(Tuple2[A, B]{a.Value(), b.Value()})
}

// Combine3 is Combine2 for three inputs.
func Combine3[A, B, C any](
	a result.Result[A], b result.Result[B], c result.Result[C],
) result.Result[Tuple3[A, B, C]] {
	if failed, ok := settle[Tuple3[A, B, C]](a, b, c); !ok {
		return failed
	}
	return result.Ok(Tuple3[A, B, C]{a.Value(), b.Value(), c.Value()})
}

// Combine4 is Combine2 for four inputs.
func Combine4[A, B, C, D any](
	a result.Result[A], b result.Result[B], c result.Result[C], d result.Result[D],
) result.Result[Tuple4[A, B, C, D]] {
	if failed, ok := settle[Tuple4[A, B, C, D]](a, b, c, d); !ok {
		return failed
	}
	return result.Ok(Tuple4[A, B, C, D]{a.Value(), b.Value(), c.Value(), d.Value()})
}

// Combine5 is Combine2 for five inputs.
func Combine5[A, B, C, D, E any](
	a result.Result[A], b result.Result[B], c result.Result[C], d result.Result[D], e result.Result[E],
) result.Result[Tuple5[A, B, C, D, E]] {
	if failed, ok := settle[Tuple5[A, B, C, D, E]](a, b, c, d, e); !ok {
		return failed
	}
	return result.Ok(Tuple5[A, B, C, D, E]{a.Value(), b.Value(), c.Value(), d.Value(), e.Value()})
}

// Combine6 is Combine2 for six inputs.
func Combine6[A, B, C, D, E, F any](
	a result.Result[A], b result.Result[B], c result.Result[C],
	d result.Result[D], e result.Result[E], f result.Result[F],
) result.Result[Tuple6[A, B, C, D, E, F]] {
	if failed, ok := settle[Tuple6[A, B, C, D, E, F]](a, b, c, d, e, f); !ok {
		return failed
	}
	return result.Ok(Tuple6[A, B, C, D, E, F]{a.Value(), b.Value(), c.Value(), d.Value(), e.Value(), f.Value()})
}
