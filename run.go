package validated

// Validator is a pure function from an input to an accumulating result.
// Validators must be free of observable side effects and safe to call any
// number of times with the same input: composition runs the next step even
// when an earlier one failed, handing it the placeholder, so a validator may
// well execute against a value that is already known to be invalid.
type Validator[In, Out, E any] func(In) Validated[Out, E]

// RunAll applies every validator to the same input and folds the results
// with Combine: the outcome carries the last validator's value (genuine or
// placeholder) and the errors of every failing validator in declaration
// order.
//
// Calling RunAll with no validators is a programmer error, not a validation
// failure: there is no Out value a trivial success could carry. It panics
// with ErrNoValidators.
func RunAll[In, Out, E any](input In, validators ...Validator[In, Out, E]) Validated[Out, E] {
	if len(validators) == 0 {
		panic(ErrNoValidators)
	}
	acc := validators[0](input)
	for _, validate := range validators[1:] {
		acc = Combine(acc, validate(input))
	}
	return acc
}
