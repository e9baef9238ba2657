package airfoil

import (
	"errors"
	"fmt"
	"math"

	"github.com/goliatone/go-parsec/pkg/params"
)

// ErrSpacing reports an unusable sample count.
var ErrSpacing = errors.New("airfoil: at least two sample positions are required")

// ErrUnordered reports sample positions that are not strictly ascending.
var ErrUnordered = errors.New("airfoil: sample positions must be strictly ascending")

// Point is a single contour coordinate.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Profile is a sampled airfoil: both surfaces evaluated at the same chordwise
// positions.
type Profile struct {
	Name   string              `json:"name"`
	Params params.ParameterSet `json:"params"`
	X      []float64           `json:"x"`
	Upper  []float64           `json:"upper"`
	Lower  []float64           `json:"lower"`
}

// UpperPoints pairs X with the upper surface heights.
func (p Profile) UpperPoints() []Point {
	return pair(p.X, p.Upper)
}

// LowerPoints pairs X with the lower surface heights.
func (p Profile) LowerPoints() []Point {
	return pair(p.X, p.Lower)
}

// Points returns the closed contour in Selig order: from the trailing edge
// along the upper surface to the leading edge, then along the lower surface
// back to the trailing edge. The leading edge point is emitted once. X must
// be ascending.
func (p Profile) Points() []Point {
	n := len(p.X)
	if n == 0 {
		return nil
	}
	out := make([]Point, 0, 2*n-1)
	for i := n - 1; i >= 0; i-- {
		out = append(out, Point{X: p.X[i], Z: p.Upper[i]})
	}
	start := 0
	if p.X[0] == 0 {
		start = 1
	}
	for i := start; i < n; i++ {
		out = append(out, Point{X: p.X[i], Z: p.Lower[i]})
	}
	return out
}

// Bounds returns the smallest and largest z over both surfaces.
func (p Profile) Bounds() (minZ, maxZ float64) {
	if len(p.Upper) == 0 && len(p.Lower) == 0 {
		return 0, 0
	}
	minZ, maxZ = math.Inf(1), math.Inf(-1)
	for _, zs := range [][]float64{p.Upper, p.Lower} {
		for _, z := range zs {
			minZ = math.Min(minZ, z)
			maxZ = math.Max(maxZ, z)
		}
	}
	return minZ, maxZ
}

// CheckAscending returns ErrUnordered when xs is not strictly ascending.
func CheckAscending(xs []float64) error {
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return fmt.Errorf("%w: x[%d]=%g follows x[%d]=%g", ErrUnordered, i, xs[i], i-1, xs[i-1])
		}
	}
	return nil
}

// Linspace returns n uniformly spaced positions from 0 to 1 inclusive.
func Linspace(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSpacing, n)
	}
	out := make([]float64, n)
	step := 1 / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[n-1] = 1
	return out, nil
}

// CosineSpacing returns n positions from 0 to 1 inclusive, clustered towards
// both edges where the contour bends most.
func CosineSpacing(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSpacing, n)
	}
	out := make([]float64, n)
	for i := range out {
		theta := math.Pi * float64(i) / float64(n-1)
		out[i] = (1 - math.Cos(theta)) / 2
	}
	out[0], out[n-1] = 0, 1
	return out, nil
}

// Spacing selects a sampling distribution by name.
type Spacing string

const (
	SpacingLinear Spacing = "linear"
	SpacingCosine Spacing = "cosine"
)

// Positions returns n positions using the named distribution.
func (s Spacing) Positions(n int) ([]float64, error) {
	switch s {
	case SpacingLinear, "":
		return Linspace(n)
	case SpacingCosine:
		return CosineSpacing(n)
	default:
		return nil, fmt.Errorf("airfoil: unknown spacing %q", string(s))
	}
}

func pair(xs, zs []float64) []Point {
	out := make([]Point, len(xs))
	for i := range xs {
		out[i] = Point{X: xs[i], Z: zs[i]}
	}
	return out
}
