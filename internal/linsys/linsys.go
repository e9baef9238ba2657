// Package linsys wraps the dense direct solver used by the coefficient solver
// so gonum types stay out of the public packages.
package linsys

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular reports a matrix that cannot be inverted, either exactly or
// within working precision.
var ErrSingular = errors.New("linsys: matrix is singular")

// ErrShape reports mismatched system dimensions.
var ErrShape = errors.New("linsys: dimension mismatch")

// Solve returns x such that A·x = b for a square row-major matrix A. It uses
// an LU factorisation with partial pivoting. Exact singularity, a condition
// number beyond gonum's tolerance and non-finite results are all reported as
// ErrSingular.
func Solve(rows [][]float64, b []float64) ([]float64, error) {
	n := len(rows)
	if n == 0 || len(b) != n {
		return nil, fmt.Errorf("%w: %d rows, %d right-hand values", ErrShape, n, len(b))
	}

	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), n)
		}
		data = append(data, row...)
	}

	a := mat.NewDense(n, n, data)
	rhs := mat.NewVecDense(n, append([]float64(nil), b...))

	var x mat.VecDense
	if err := x.SolveVec(a, rhs); err != nil {
		var cond mat.Condition
		if errors.Is(err, mat.ErrSingular) || errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		return nil, fmt.Errorf("linsys: solve: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		v := x.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite solution component %d", ErrSingular, i)
		}
		out[i] = v
	}
	return out, nil
}

// Residual returns max_i |(A·x - b)_i|, handy for checking a solution.
func Residual(rows [][]float64, x, b []float64) float64 {
	worst := 0.0
	for i, row := range rows {
		sum := -b[i]
		for j, v := range row {
			sum += v * x[j]
		}
		if d := math.Abs(sum); d > worst {
			worst = d
		}
	}
	return worst
}
