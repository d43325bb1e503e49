package ode

import (
	"errors"
	"fmt"
)

// Domain errors for problem setup.
var (
	// ErrInvalidParameter indicates a problem parameter outside its valid range.
	ErrInvalidParameter = errors.New("ode: invalid parameter")
)

// ParamError wraps ErrInvalidParameter with the offending field and value.
type ParamError struct {
	Field   string
	Value   float64
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("ode: %s = %g: %s", e.Field, e.Value, e.Message)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}
