package validated

// Combine merges two independently produced results into one. The carried
// value always comes from v2 (the genuine value when v2 is valid, its
// placeholder when not), while the errors are v1's followed by v2's, in
// order. v1's carried value is discarded; only its errors survive. A valid v1
// is therefore fully transparent: Combine(Valid(x), v2) == v2.
//
// Combine is the foundation the sequential (Then) and aggregate (CombineAll,
// All, RunAll) operators are built on.
func Combine[A, B, E any](v1 Validated[A, E], v2 Validated[B, E]) Validated[B, E] {
	if len(v1.errs) == 0 {
		return v2
	}
	if len(v2.errs) == 0 {
		return Validated[B, E]{value: v2.value, errs: v1.errs}
	}
	merged := make([]E, 0, len(v1.errs)+len(v2.errs))
	merged = append(append(merged, v1.errs...), v2.errs...)
	return Validated[B, E]{value: v2.value, errs: merged}
}

// CombineAll folds a sequence of results left to right with Combine, seeded
// with Valid(def). The outcome carries the last element's value (genuine or
// placeholder) and every error from every element in encounter order. An
// empty sequence yields Valid(def).
func CombineAll[T, E any](items []Validated[T, E], def T) Validated[T, E] {
	acc := Valid[T, E](def)
	for _, item := range items {
		acc = Combine(acc, item)
	}
	return acc
}

// All collects a sequence of results element-wise into a single result
// holding the carried values (genuine or placeholder) in original order,
// with the errors of every invalid element concatenated in encounter order.
// An empty sequence yields Valid of an empty slice.
func All[T, E any](items []Validated[T, E]) Validated[[]T, E] {
	values := make([]T, len(items))
	total := 0
	for i, item := range items {
		values[i] = item.value
		total += len(item.errs)
	}
	if total == 0 {
		return Validated[[]T, E]{value: values}
	}
	merged := make([]E, 0, total)
	for _, item := range items {
		merged = append(merged, item.errs...)
	}
	return Validated[[]T, E]{value: values, errs: merged}
}
