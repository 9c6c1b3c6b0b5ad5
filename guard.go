package validated

// Guard chains a dependent step that must not run on invalid input. When v
// is valid the step runs normally; when v is invalid the step is skipped
// entirely and the outcome is v's errors behind the supplied placeholder.
// This is the deliberate opt-out from Then's always-continue rule, for steps
// that are expensive or meaningless against nonsense input, such as a
// uniqueness lookup after a format check already failed.
func Guard[A, B, E any](v Validated[A, E], placeholder B, next func(A) Validated[B, E]) Validated[B, E] {
	if len(v.errs) > 0 {
		return Validated[B, E]{value: placeholder, errs: v.errs}
	}
	return next(v.value)
}

// LazyGuard is Guard with the placeholder supplied as a function, evaluated
// only on the invalid path. Use it when constructing the placeholder is
// itself costly.
func LazyGuard[A, B, E any](v Validated[A, E], placeholder func() B, next func(A) Validated[B, E]) Validated[B, E] {
	if len(v.errs) > 0 {
		return Validated[B, E]{value: placeholder(), errs: v.errs}
	}
	return next(v.value)
}
