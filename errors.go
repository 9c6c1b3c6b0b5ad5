package validated

import "errors"

var (
	// ErrNoValidators is the panic value of RunAll when called with an empty
	// validator set. It marks a programmer error, distinct from the
	// validation errors a Validated accumulates.
	ErrNoValidators = errors.New("validated: RunAll called with no validators")
)
