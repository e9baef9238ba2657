package airfoil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-parsec/internal/linsys"
	"github.com/goliatone/go-parsec/pkg/params"
)

func TestCoefficientMatrix_Rows(t *testing.T) {
	x := 0.4
	p := func(e float64) float64 { return math.Pow(x, e) }

	want := [Terms][Terms]float64{
		{1, 1, 1, 1, 1, 1},
		{p(0.5), p(1.5), p(2.5), p(3.5), p(4.5), p(5.5)},
		{0.5, 1.5, 2.5, 3.5, 4.5, 5.5},
		{0.5 * p(-0.5), 1.5 * p(0.5), 2.5 * p(1.5), 3.5 * p(2.5), 4.5 * p(3.5), 5.5 * p(4.5)},
		{-0.25 * p(-1.5), 0.75 * p(-0.5), 3.75 * p(0.5), 8.75 * p(1.5), 15.75 * p(2.5), 24.75 * p(3.5)},
		{1, 0, 0, 0, 0, 0},
	}

	got := CoefficientMatrix(x)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestRHS_ThicknessAware(t *testing.T) {
	ps := params.New()
	ps.RLE = 0.02
	ps.ZUp = 0.08
	ps.ZXXUp = -0.65
	ps.ZLo = -0.06
	ps.ZXXLo = 0.6
	ps.ZTE = 0.01
	ps.DZTE = 0.004
	ps.AlphaTE = params.Radians(-5)
	ps.BetaTE = params.Radians(8)

	wantUpper := [Terms]float64{0.012, 0.08, math.Tan(params.Radians(-9)), 0, -0.65, 0.2}
	wantLower := [Terms]float64{0.008, -0.06, math.Tan(params.Radians(-1)), 0, 0.6, -0.2}

	if diff := cmp.Diff(wantUpper, UpperRHS(ps), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("upper rhs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantLower, LowerRHS(ps), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("lower rhs mismatch (-want +got):\n%s", diff)
	}
}

func TestSolve_ResidualIsSmall(t *testing.T) {
	ps := params.New()
	ps.RLE = 0.02
	ps.XUp = 0.35
	ps.ZUp = 0.08
	ps.ZXXUp = -0.65
	ps.XLo = 0.25
	ps.ZLo = -0.08
	ps.ZXXLo = 0.6
	ps.DZTE = 0.04
	ps.AlphaTE = params.Radians(-5)
	ps.BetaTE = params.Radians(8)

	upper, lower, err := Solve(ps)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	check := func(name string, crest float64, rhs [Terms]float64, c Coefficients) {
		m := CoefficientMatrix(crest)
		rows := make([][]float64, Terms)
		for i := range m {
			rows[i] = m[i][:]
		}
		if r := linsys.Residual(rows, c[:], rhs[:]); r > 1e-10 {
			t.Fatalf("%s residual too large: %g", name, r)
		}
	}
	check("upper", ps.XUp, UpperRHS(ps), upper)
	check("lower", ps.XLo, LowerRHS(ps), lower)

	single, err := SolveUpper(ps)
	if err != nil {
		t.Fatalf("solve upper: %v", err)
	}
	if single != upper {
		t.Fatalf("SolveUpper disagrees with Solve: %v vs %v", single, upper)
	}
	single, err = SolveLower(ps)
	if err != nil {
		t.Fatalf("solve lower: %v", err)
	}
	if single != lower {
		t.Fatalf("SolveLower disagrees with Solve: %v vs %v", single, lower)
	}
}

func TestEvaluate_LeadingEdgeIsExactZero(t *testing.T) {
	c := Coefficients{1, -2, 3, -4, 5, -6}
	got, err := Evaluate(c, 0)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got != 0 || math.Signbit(got) {
		t.Fatalf("expected +0 at the leading edge, got %v", got)
	}
}
