package validated

import (
	"errors"
	"fmt"
)

// Validated is the result of one or more validation steps over a value of
// type T, with errors of type E collected along the way. It has exactly two
// states: valid, carrying the genuine value, or invalid, carrying every error
// encountered so far plus a caller-supplied placeholder of the same type T.
//
// The placeholder exists only so that later steps can keep executing and keep
// contributing their own errors; it is never a real answer and never escapes
// through Result. Errors are kept in the order they were collected, duplicates
// included: the library only stores and concatenates them, without ever
// inspecting or reordering the values.
//
// Validated values are immutable. The zero value is valid and carries T's
// zero value, which is also the seed CombineAll folds from.
type Validated[T, E any] struct {
	// errs is never mutated after construction and is non-empty exactly when
	// the value is invalid; combinators may share backing arrays because of
	// that, but anything handed to callers is a copy.
	value T
	errs  []E
}

// Valid returns a valid result carrying value.
func Valid[T, E any](value T) Validated[T, E] {
	return Validated[T, E]{value: value}
}

// Invalid returns an invalid result carrying the given placeholder and
// errors. The signature demands at least one error, so an error-free invalid
// value cannot be constructed. The placeholder must be a usable instance of T
// (not a nil stand-in for "no value"): downstream steps will be handed it.
func Invalid[T, E any](placeholder T, first E, rest ...E) Validated[T, E] {
	errs := make([]E, 0, 1+len(rest))
	errs = append(append(errs, first), rest...)
	return Validated[T, E]{value: placeholder, errs: errs}
}

// IsValid reports whether no errors have been collected.
func (v Validated[T, E]) IsValid() bool {
	return len(v.errs) == 0
}

// IsInvalid reports whether at least one error has been collected.
func (v Validated[T, E]) IsInvalid() bool {
	return len(v.errs) > 0
}

// Unwrap returns the carried value regardless of state: the genuine value
// when valid, the placeholder when invalid. Callers should branch on IsValid
// first; use Result for the safe boundary conversion.
func (v Validated[T, E]) Unwrap() T {
	return v.value
}

// Errors returns the collected errors in encounter order, or nil when valid.
// The returned slice is a copy; mutating it does not affect v.
func (v Validated[T, E]) Errors() []E {
	if len(v.errs) == 0 {
		return nil
	}
	out := make([]E, len(v.errs))
	copy(out, v.errs)
	return out
}

// Result converts the accumulated representation into an ordinary
// success-or-errors pair: (value, nil) when valid, (zero, errors) when
// invalid. The placeholder is discarded so it can never leak to callers as a
// real result.
func (v Validated[T, E]) Result() (T, []E) {
	if len(v.errs) == 0 {
		return v.value, nil
	}
	var zero T
	return zero, v.Errors()
}

// Err collapses a Validated with error-typed errors into a single error: nil
// when valid, otherwise errors.Join of the collected errors in encounter
// order. The joined error unwraps to the individual errors, so errors.Is and
// errors.As keep working across the boundary. Note that errors.Join ignores
// nil elements.
func Err[T any](v Validated[T, error]) error {
	if len(v.errs) == 0 {
		return nil
	}
	return errors.Join(v.errs...)
}

// String implements fmt.Stringer for test output and debugging. It shows the
// carried value and, when invalid, the collected errors; it is not a
// substitute for Result.
func (v Validated[T, E]) String() string {
	if len(v.errs) == 0 {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	return fmt.Sprintf("Invalid(%v; %v)", v.value, v.errs)
}
