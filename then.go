package validated

// Then chains a dependent validation step onto v. The next step always runs:
// against the genuine value when v is valid, against the placeholder when it
// is not. That rule is what lets a chain of field checks report every failure
// instead of stopping at the first. The outcome carries next's value (genuine
// or placeholder) and v's errors followed by whatever errors next produced.
//
// Because next may run on a placeholder, it must not assume its input passed
// the earlier checks; use Guard when a step is unsafe or wasteful to run on
// known-invalid data.
func Then[A, B, E any](v Validated[A, E], next func(A) Validated[B, E]) Validated[B, E] {
	return Combine(v, next(v.value))
}
