package prep

import (
	"errors"
	"fmt"
)

// ErrInvalidInput wraps every validation failure Prepare can report: too
// few usable leaves, p outside its valid range, or a negative edge weight
// reaching the prepared tree. Use errors.Is against this sentinel, or
// inspect the wrapped error text for specifics.
var ErrInvalidInput = errors.New("prep: invalid input")

// errInvalid wraps a reason under ErrInvalidInput so callers can both
// errors.Is(err, ErrInvalidInput) and read a human-readable message.
func errInvalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
