package airfoil

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-parsec/pkg/params"
)

// ErrDomain aliases params.ErrDomain so callers need a single import.
var ErrDomain = params.ErrDomain

// DomainError aliases params.DomainError.
type DomainError = params.DomainError

// ErrSingularSystem reports a coefficient matrix that cannot be inverted for
// the given crest position.
var ErrSingularSystem = errors.New("parsec: singular coefficient system")

// Surface identifies one side of the airfoil.
type Surface string

const (
	SurfaceUpper Surface = "upper"
	SurfaceLower Surface = "lower"
)

// SingularSystemError carries the surface whose system failed and the solver
// error. It unwraps to ErrSingularSystem.
type SingularSystemError struct {
	Surface Surface
	Crest   float64
	Err     error
}

func (e *SingularSystemError) Error() string {
	if e == nil {
		return ErrSingularSystem.Error()
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s surface (crest x = %g)", ErrSingularSystem, e.Surface, e.Crest)
	}
	return fmt.Sprintf("%s: %s surface (crest x = %g): %v", ErrSingularSystem, e.Surface, e.Crest, e.Err)
}

func (e *SingularSystemError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSingularSystem}
	}
	return []error{ErrSingularSystem, e.Err}
}

func positionErr(x float64, reason string) error {
	return &DomainError{Field: "x", Value: x, Reason: reason}
}
