package airfoil

import (
	"fmt"

	"github.com/goliatone/go-parsec/pkg/params"
)

// Airfoil is a PARSEC section with solved coefficients. It is immutable and
// safe for concurrent use.
type Airfoil struct {
	params params.ParameterSet
	upper  Coefficients
	lower  Coefficients
}

// New copies the parameters and solves both surfaces. On error no Airfoil is
// returned.
func New(p params.ParameterSet) (*Airfoil, error) {
	upper, lower, err := Solve(p)
	if err != nil {
		return nil, err
	}
	return &Airfoil{params: p, upper: upper, lower: lower}, nil
}

// MustNew panics when the parameters cannot be solved. Intended for fixtures
// and package-level samples.
func MustNew(p params.ParameterSet) *Airfoil {
	af, err := New(p)
	if err != nil {
		panic(fmt.Sprintf("airfoil: %v", err))
	}
	return af
}

// Params returns a copy of the parameters the airfoil was built from.
func (a *Airfoil) Params() params.ParameterSet {
	return a.params
}

// UpperCoefficients returns the upper surface coefficients.
func (a *Airfoil) UpperCoefficients() Coefficients {
	return a.upper
}

// LowerCoefficients returns the lower surface coefficients.
func (a *Airfoil) LowerCoefficients() Coefficients {
	return a.lower
}

// Upper evaluates the upper surface at x.
func (a *Airfoil) Upper(x float64) (float64, error) {
	return Evaluate(a.upper, x)
}

// Lower evaluates the lower surface at x.
func (a *Airfoil) Lower(x float64) (float64, error) {
	return Evaluate(a.lower, x)
}

// UpperAll evaluates the upper surface at each position.
func (a *Airfoil) UpperAll(xs []float64) ([]float64, error) {
	return EvaluateAll(a.upper, xs)
}

// LowerAll evaluates the lower surface at each position.
func (a *Airfoil) LowerAll(xs []float64) ([]float64, error) {
	return EvaluateAll(a.lower, xs)
}

// Thickness returns upper minus lower at x. Crossed surfaces give negative
// values.
func (a *Airfoil) Thickness(x float64) (float64, error) {
	zu, zl, err := a.both(x)
	if err != nil {
		return 0, err
	}
	return zu - zl, nil
}

// Camber returns the mean line height at x.
func (a *Airfoil) Camber(x float64) (float64, error) {
	zu, zl, err := a.both(x)
	if err != nil {
		return 0, err
	}
	return (zu + zl) / 2, nil
}

// LeadingEdgeRadius recovers the radius of curvature at x → 0 from a_0 of
// the given surface. Near the leading edge z ≈ a_0·√x, a parabola whose
// radius at the vertex is a_0²/2.
func (a *Airfoil) LeadingEdgeRadius(s Surface) float64 {
	c := a.upper
	if s == SurfaceLower {
		c = a.lower
	}
	return c[0] * c[0] / 2
}

// Sample evaluates both surfaces at xs and returns them as a Profile. xs must
// be strictly ascending.
func (a *Airfoil) Sample(name string, xs []float64) (Profile, error) {
	if err := CheckAscending(xs); err != nil {
		return Profile{}, err
	}
	upper, err := a.UpperAll(xs)
	if err != nil {
		return Profile{}, fmt.Errorf("airfoil: sample upper: %w", err)
	}
	lower, err := a.LowerAll(xs)
	if err != nil {
		return Profile{}, fmt.Errorf("airfoil: sample lower: %w", err)
	}
	return Profile{
		Name:   name,
		Params: a.params,
		X:      append([]float64(nil), xs...),
		Upper:  upper,
		Lower:  lower,
	}, nil
}

func (a *Airfoil) both(x float64) (float64, float64, error) {
	zu, err := a.Upper(x)
	if err != nil {
		return 0, 0, err
	}
	zl, err := a.Lower(x)
	if err != nil {
		return 0, 0, err
	}
	return zu, zl, nil
}
