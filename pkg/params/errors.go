package params

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDomain marks inputs outside the domain of the PARSEC polynomials.
var ErrDomain = errors.New("parsec: domain error")

// DomainError reports which value violated the domain and why. It unwraps to
// ErrDomain.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	if e == nil {
		return ErrDomain.Error()
	}
	return fmt.Sprintf("%s: %s = %s: %s", ErrDomain, e.Field, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainErr(field string, value float64, reason string) error {
	return &DomainError{Field: field, Value: value, Reason: reason}
}
