package airfoil

import (
	"fmt"
	"math"

	"github.com/goliatone/go-parsec/internal/linsys"
	"github.com/goliatone/go-parsec/pkg/params"
)

// Terms is the number of basis functions per surface.
const Terms = 6

// Coefficients are the weights a_0..a_5 of z(x) = Σ a_i·x^(i+0.5).
type Coefficients [Terms]float64

// CoefficientMatrix builds the 6x6 system matrix for a crest at x. Rows are,
// in order: value at the trailing edge, value at the crest, slope at the
// trailing edge, slope at the crest, curvature at the crest and the leading
// edge term that isolates a_0.
func CoefficientMatrix(x float64) [Terms][Terms]float64 {
	var m [Terms][Terms]float64
	for i := 0; i < Terms; i++ {
		e := exponent(i)
		m[0][i] = 1
		m[1][i] = math.Pow(x, e)
		m[2][i] = e
		m[3][i] = e * math.Pow(x, e-1)
		m[4][i] = e * (e - 1) * math.Pow(x, e-2)
	}
	m[5][0] = 1
	return m
}

// UpperRHS is the right-hand side of the upper surface system.
func UpperRHS(p params.ParameterSet) [Terms]float64 {
	return [Terms]float64{
		p.ZTE + p.DZTE/2,
		p.ZUp,
		math.Tan(p.AlphaTE - p.BetaTE/2),
		0,
		p.ZXXUp,
		math.Sqrt(2 * p.RLE),
	}
}

// LowerRHS is the right-hand side of the lower surface system.
func LowerRHS(p params.ParameterSet) [Terms]float64 {
	return [Terms]float64{
		p.ZTE - p.DZTE/2,
		p.ZLo,
		math.Tan(p.AlphaTE + p.BetaTE/2),
		0,
		p.ZXXLo,
		-math.Sqrt(2 * p.RLE),
	}
}

// Solve computes the coefficient vectors of both surfaces. Domain violations
// are reported before any arithmetic so a negative radius never reaches the
// square root.
func Solve(p params.ParameterSet) (upper, lower Coefficients, err error) {
	if err = p.Validate(); err != nil {
		return Coefficients{}, Coefficients{}, err
	}
	if upper, err = solve(SurfaceUpper, p.XUp, UpperRHS(p)); err != nil {
		return Coefficients{}, Coefficients{}, err
	}
	if lower, err = solve(SurfaceLower, p.XLo, LowerRHS(p)); err != nil {
		return Coefficients{}, Coefficients{}, err
	}
	return upper, lower, nil
}

// SolveUpper computes the upper surface coefficients only. The whole
// parameter set must be valid.
func SolveUpper(p params.ParameterSet) (Coefficients, error) {
	if err := p.Validate(); err != nil {
		return Coefficients{}, err
	}
	return solve(SurfaceUpper, p.XUp, UpperRHS(p))
}

// SolveLower computes the lower surface coefficients only. The whole
// parameter set must be valid.
func SolveLower(p params.ParameterSet) (Coefficients, error) {
	if err := p.Validate(); err != nil {
		return Coefficients{}, err
	}
	return solve(SurfaceLower, p.XLo, LowerRHS(p))
}

func solve(surface Surface, crest float64, rhs [Terms]float64) (Coefficients, error) {
	m := CoefficientMatrix(crest)
	rows := make([][]float64, Terms)
	for i := range m {
		rows[i] = m[i][:]
	}

	x, err := linsys.Solve(rows, rhs[:])
	if err != nil {
		return Coefficients{}, &SingularSystemError{Surface: surface, Crest: crest, Err: err}
	}

	var out Coefficients
	copy(out[:], x)
	return out, nil
}

func exponent(i int) float64 {
	return float64(i) + 0.5
}

// String formats the coefficients for diagnostics.
func (c Coefficients) String() string {
	return fmt.Sprintf("[% .8e % .8e % .8e % .8e % .8e % .8e]", c[0], c[1], c[2], c[3], c[4], c[5])
}
