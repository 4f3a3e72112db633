package validate

import (
	"fmt"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
)

// All combines homogeneous results. It succeeds with every value in input
// order, or fails with the errors of every failing element. Values of valid
// elements are never returned alongside a failure.
//
// An empty input succeeds with an empty, non-nil slice.
func All[T any](rs []result.Result[T]) result.Result[[]T] {
	outcomes := make([]Outcome, len(rs))
	for i, r := range rs {
		outcomes[i] = r
	}
	if failed, ok := settle[[]T](outcomes...); !ok {
		return failed
	}
	values := make([]T, len(rs))
	for i, r := range rs {
		values[i] = r.Value()
	}
	return result.Ok(values)
}

// Each runs create over every raw element and combines the results with All.
// Error fields are rewritten to field[i] so a caller can tell which element
// was rejected.
func Each[R, T any](field string, raws []R, create func(R) result.Result[T]) result.Result[[]T] {
	rs := make([]result.Result[T], len(raws))
	for i, raw := range raws {
		r := create(raw)
		if r.IsFailure() && !r.IsCanceled() {
			errs := r.Errors()
			for j := range errs {
				errs[j].Field = fmt.Sprintf("%s[%d]", field, i)
			}
			r = result.FailAll[T](errs)
		}
		rs[i] = r
	}
	return All(rs)
}

// Optional validates raw only when it is present. A nil raw is absence, not
// invalidity: it succeeds with a nil value.
func Optional[R, T any](raw *R, create func(R) result.Result[T]) result.Result[*T] {
	if raw == nil {
		return result.Ok[*T](nil)
	}
	return result.Map(create(*raw), func(v T) *T { return &v })
}

// NonEmpty fails with a REQUIRED error for field when the combined list is
// empty. Use it for list inputs that must carry at least one element.
func NonEmpty[T any](field string, r result.Result[[]T]) result.Result[[]T] {
	return result.Bind(r, func(vs []T) result.Result[[]T] {
		if len(vs) == 0 {
			return result.Fail[[]T](result.Validation(field, result.CodeRequired,
				"%s must contain at least one element", field))
		}
		return result.Ok(vs)
	})
}
