// Package parsec computes airfoil contours from the eleven PARSEC shape
// parameters. The root package is a thin facade over pkg/airfoil (solver and
// evaluator), pkg/javafoil (interchange strings), pkg/catalog (named
// parameter sets) and pkg/orchestrator (sampling and rendering).
package parsec

import (
	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/javafoil"
	"github.com/goliatone/go-parsec/pkg/params"
)

// ParameterSet aliases params.ParameterSet.
type ParameterSet = params.ParameterSet

// Airfoil aliases airfoil.Airfoil.
type Airfoil = airfoil.Airfoil

// NewParameterSet returns a zero parameter record with the default blending
// weight.
func NewParameterSet() ParameterSet {
	return params.New()
}

// NewAirfoil validates ps and solves both surfaces.
func NewAirfoil(ps ParameterSet) (*Airfoil, error) {
	return airfoil.New(ps)
}

// ParseParsec11 reads a PARSEC-11 interchange string such as
// "Parsec-11 [0.01:0.4:0.075:-0.1:0.4:-0.075:0.1:0:0:0:20]".
func ParseParsec11(s string) (ParameterSet, error) {
	return javafoil.Parse(s)
}

// FormatParsec11 writes ps as a PARSEC-11 interchange string.
func FormatParsec11(ps ParameterSet) string {
	return javafoil.Format(ps)
}
