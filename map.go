package validated

// Map transforms the carried value (the genuine value when valid, the
// placeholder when invalid), leaving the state and the collected errors
// untouched. Use it to adapt a validated primitive into a richer type
// without contributing further errors.
func Map[A, B, E any](v Validated[A, E], f func(A) B) Validated[B, E] {
	return Validated[B, E]{value: f(v.value), errs: v.errs}
}

// MapErrors recasts the error type by applying f to each collected error,
// preserving order and count; the carried value and state are untouched.
// Typical use is stringifying structured errors once at a boundary.
func MapErrors[T, E, F any](v Validated[T, E], f func(E) F) Validated[T, F] {
	if len(v.errs) == 0 {
		return Validated[T, F]{value: v.value}
	}
	mapped := make([]F, len(v.errs))
	for i, e := range v.errs {
		mapped[i] = f(e)
	}
	return Validated[T, F]{value: v.value, errs: mapped}
}

// TryMap applies a second fallible step to the genuine value when v is
// valid: Valid(out) if f succeeds, Invalid(placeholder, err) if it fails.
// When v is already invalid, f is not invoked and the outcome is v's errors
// behind the freshly supplied placeholder, which replaces the old one since
// the value type changes.
func TryMap[A, B any](v Validated[A, error], placeholder B, f func(A) (B, error)) Validated[B, error] {
	if len(v.errs) > 0 {
		return Validated[B, error]{value: placeholder, errs: v.errs}
	}
	out, err := f(v.value)
	if err != nil {
		return Validated[B, error]{value: placeholder, errs: []error{err}}
	}
	return Validated[B, error]{value: out}
}
