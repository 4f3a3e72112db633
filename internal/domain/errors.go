package domain

import "errors"

// ErrNotFound is returned by repository scan helpers when a query matched no
// row. The repository boundary turns it into a NOT_FOUND result.
var ErrNotFound = errors.New("not found")

// ErrCorruptRow is returned when a stored row no longer satisfies the domain
// rules. It surfaces as a persistence failure, never as a validation error.
var ErrCorruptRow = errors.New("stored row violates domain rules")
