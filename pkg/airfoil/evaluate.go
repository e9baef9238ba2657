package airfoil

import (
	"fmt"
	"math"
)

// Evaluate returns z(x) = Σ a_i·x^(i+0.5). The leading edge x = 0 evaluates
// to exactly 0. Negative or non-finite positions are reported as domain
// errors; positions beyond the trailing edge follow the polynomial.
func Evaluate(a Coefficients, x float64) (float64, error) {
	if err := checkPosition(x); err != nil {
		return 0, err
	}
	return evaluate(a, x), nil
}

// EvaluateAll evaluates z at every position, preserving order. It stops at
// the first invalid position and reports its index.
func EvaluateAll(a Coefficients, xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if err := checkPosition(x); err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = evaluate(a, x)
	}
	return out, nil
}

// Slope returns dz/dx. It diverges at the leading edge, so x must be
// strictly positive.
func Slope(a Coefficients, x float64) (float64, error) {
	if err := checkInterior(x); err != nil {
		return 0, err
	}
	sum := 0.0
	for i, c := range a {
		e := exponent(i)
		sum += c * e * math.Pow(x, e-1)
	}
	return sum, nil
}

// Curvature returns d²z/dx². Like Slope it requires x > 0.
func Curvature(a Coefficients, x float64) (float64, error) {
	if err := checkInterior(x); err != nil {
		return 0, err
	}
	sum := 0.0
	for i, c := range a {
		e := exponent(i)
		sum += c * e * (e - 1) * math.Pow(x, e-2)
	}
	return sum, nil
}

func evaluate(a Coefficients, x float64) float64 {
	if x == 0 {
		return 0
	}
	sum := 0.0
	for i, c := range a {
		sum += c * math.Pow(x, exponent(i))
	}
	return sum
}

func checkPosition(x float64) error {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return positionErr(x, "position must be finite")
	case x < 0:
		return positionErr(x, "position lies ahead of the leading edge")
	}
	return nil
}

func checkInterior(x float64) error {
	if err := checkPosition(x); err != nil {
		return err
	}
	if x == 0 {
		return positionErr(x, "derivatives diverge at the leading edge")
	}
	return nil
}
