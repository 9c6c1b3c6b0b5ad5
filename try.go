package validated

// Numeric covers the built-in numeric types accepted by Number.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Try lifts an ordinary fallible computation into the accumulating world:
// Valid(value) when err is nil, otherwise Invalid(placeholder, err). It is
// the universal entry point for the common E = error case; the typed
// constructors below are Try with a canonical placeholder already chosen, so
// that callers composing many fields do not have to invent one per field:
//
//	n, err := strconv.Atoi(raw)
//	v := validated.Try(0, n, err)
//
//	// or, since the typed constructors accept a (value, error) pair directly:
//	v := validated.Number(strconv.Atoi(raw))
func Try[T any](placeholder T, value T, err error) Validated[T, error] {
	if err != nil {
		return Validated[T, error]{value: placeholder, errs: []error{err}}
	}
	return Validated[T, error]{value: value}
}

// Number lifts a fallible numeric computation, using zero as the placeholder.
func Number[N Numeric](value N, err error) Validated[N, error] {
	var zero N
	return Try(zero, value, err)
}

// String lifts a fallible string computation, using "" as the placeholder.
func String(value string, err error) Validated[string, error] {
	return Try("", value, err)
}

// Bool lifts a fallible boolean computation, using false as the placeholder.
func Bool(value bool, err error) Validated[bool, error] {
	return Try(false, value, err)
}

// Slice lifts a fallible slice computation. The placeholder is an empty,
// non-nil slice, safe for downstream iteration without nil checks.
func Slice[S any](value []S, err error) Validated[[]S, error] {
	return Try([]S{}, value, err)
}

// Bytes lifts a fallible byte-buffer computation, using an empty buffer as
// the placeholder.
func Bytes(value []byte, err error) Validated[[]byte, error] {
	return Try([]byte{}, value, err)
}

// MapOf lifts a fallible map computation. The placeholder is an empty,
// non-nil map so that downstream reads and writes cannot trap.
func MapOf[K comparable, V any](value map[K]V, err error) Validated[map[K]V, error] {
	return Try(map[K]V{}, value, err)
}

// Ptr lifts a fallible optional computation. The placeholder is nil, the
// canonical empty optional; downstream steps must treat it as absent, exactly
// as they would for a valid-but-unset *P.
func Ptr[P any](value *P, err error) Validated[*P, error] {
	return Try[*P](nil, value, err)
}
