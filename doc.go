// Package validated provides an accumulating validation result type and the
// combinators to compose it, so that checking a value with several
// independent rules reports every failure at once instead of stopping at the
// first.
//
// The core type is Validated[T, E]: either Valid carrying a genuine value of
// type T, or Invalid carrying the ordered list of every error of type E
// collected so far plus a placeholder of the same type T. The placeholder is
// what keeps a chain moving: later steps run against it and contribute their
// own errors, so the final result presents the complete picture. It is
// throwaway by contract: Result discards it, and only Unwrap (for callers
// that already branched on IsValid) can observe it.
//
// The package is generic over the error element type E and never inspects or
// reorders error values; it only stores and concatenates them in encounter
// order, duplicates included. The constructors that lift ordinary
// (value, error) pairs (Try and the typed wrappers Number, String, Bool,
// Slice, Bytes, MapOf, and Ptr) fix E to error; the algebra itself works with
// any E.
//
// # Usage
//
// Validate the fields of a form, accumulating errors across all of them:
//
//	type Signup struct {
//		Email string
//		Age   int
//	}
//
//	email := validated.String(checkEmail(raw.Email)) // lifts a (string, error) pair
//	age := validated.Number(parseAge(raw.Age))       // lifts an (int, error) pair
//
//	form := validated.Then(email, func(e string) validated.Validated[Signup, error] {
//		return validated.Map(age, func(a int) Signup {
//			return Signup{Email: e, Age: a}
//		})
//	})
//
//	if value, errs := form.Result(); errs != nil {
//		// every failing field is represented, in field order
//	} else {
//		// value is the fully validated Signup
//	}
//
// Then always runs the next step, against the placeholder when the current
// step failed, which is what makes the error list complete. When a step is
// expensive or unsafe to run on known-invalid input (a database uniqueness
// check after the format check already failed), opt out with Guard or
// LazyGuard, which skip the step and carry the errors forward.
//
// Aggregate helpers cover the collection shapes: All turns a slice of
// results into a result of a slice, CombineAll folds a slice into a single
// value, and RunAll applies a set of validators to one input. All of them
// preserve encounter order of errors.
//
// # Error Handling
//
// Validation errors are data, not control flow: they accumulate inside
// Invalid values and surface only at the extraction boundary, never as
// panics. Result yields the generic success-or-errors pair, and Err collapses
// error-typed results into a single error via errors.Join so that errors.Is
// and errors.As keep working. Programmer errors are kept
// strictly apart from that stream: RunAll with an empty validator set panics
// with ErrNoValidators, and constructing an Invalid without at least one
// error is unrepresentable in the API.
//
// Validator functions must be pure. Composition may invoke them with
// placeholder values that already failed earlier checks, so a validator that
// performs side effects would perform them on nonsense input.
//
// # Concurrency
//
// Everything here is synchronous and deterministic; the package makes no
// scheduling decisions. To validate fields in parallel, resolve each field's
// Validated value concurrently (an errgroup works well) and hand the
// completed slice to All or CombineAll. The fold itself stays sequential,
// so the error order is the slice order, not the completion order.
//
// # Performance Considerations
//
// Operations are allocation-only, with no locks and no I/O. Values are
// immutable and may share error-list backing arrays internally; slices
// returned to callers are copies. Combining two valid values allocates
// nothing, and a valid left operand is returned by Combine as is.
package validated
