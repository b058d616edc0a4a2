package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingTrainingMax is returned before any weight math runs when a
// builder receives a non-positive training max.
var ErrMissingTrainingMax = errors.New("missing training max")

// ValidationError carries the complete list of configuration violations.
// Validation never stops at the first problem.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid program configuration: %s", strings.Join(e.Violations, "; "))
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
