package airfoil_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/params"
)

func symmetricParams() params.ParameterSet {
	ps := params.New()
	ps.RLE = 0.01
	ps.XUp = 0.4
	ps.ZUp = 0.075
	ps.ZXXUp = -0.1
	ps.XLo = 0.4
	ps.ZLo = -0.075
	ps.ZXXLo = 0.1
	ps.ZTE = 0
	ps.DZTE = 0
	ps.AlphaTE = params.Radians(0)
	ps.BetaTE = params.Radians(20)
	return ps
}

func cambered() params.ParameterSet {
	ps := params.New()
	ps.RLE = 0.0083
	ps.XUp = 0.423
	ps.ZUp = 0.0587
	ps.ZXXUp = -0.347
	ps.XLo = 0.358
	ps.ZLo = -0.032
	ps.ZXXLo = 0.417
	ps.ZTE = 0.002
	ps.DZTE = 0.004
	ps.AlphaTE = params.Radians(-4)
	ps.BetaTE = params.Radians(5.64)
	return ps
}

var (
	refXUpper = []float64{
		1.00000000, 0.98116667, 0.95822222, 0.93150000, 0.90133333, 0.86805556,
		0.83200000, 0.79350000, 0.75288889, 0.71050000, 0.66666667, 0.62172222,
		0.57600000, 0.52983333, 0.48355556, 0.43750000, 0.39200000, 0.34738889,
		0.30400000, 0.26216667, 0.22222222, 0.18450000, 0.14933333, 0.11705556,
		0.08800000, 0.06250000, 0.04088889, 0.02350000, 0.01066667, 0.00272222,
		0.00000000,
	}
	refZUpper = []float64{
		0.00000000, 0.00365591, 0.00883517, 0.01550735, 0.02341024, 0.03208125,
		0.04093427, 0.04936126, 0.05683477, 0.06298945, 0.06766698, 0.07091725, 0.07295802,
		0.07410356, 0.07467861, 0.07493622, 0.07499670, 0.07482051, 0.07422028, 0.07290934,
		0.07057594, 0.06696678, 0.06196035, 0.05561203, 0.04815822, 0.03997501, 0.03149790,
		0.02311931, 0.01508883, 0.00744447, 0.00000000,
	}
	refXLower = []float64{
		0.00000000, 0.00272222, 0.01066667, 0.02350000, 0.04088889, 0.06250000,
		0.08800000, 0.11705556, 0.14933333, 0.18450000, 0.22222222, 0.26216667,
		0.30400000, 0.34738889, 0.39200000, 0.43750000, 0.48355556, 0.52983333,
		0.57600000, 0.62172222, 0.66666667, 0.71050000, 0.75288889, 0.79350000,
		0.83200000, 0.86805556, 0.90133333, 0.93150000, 0.95822222, 0.98116667,
		1.00000000,
	}
	refZLower = []float64{
		0.00000000, -0.00744447, -0.01508883, -0.02311931, -0.03149790, -0.03997501,
		-0.04815822, -0.05561203, -0.06196035, -0.06696678, -0.07057594, -0.07290934, -0.07422028,
		-0.07482051, -0.07499670, -0.07493622, -0.07467861, -0.07410356, -0.07295802, -0.07091725,
		-0.06766698, -0.06298945, -0.05683477, -0.04936126, -0.04093427, -0.03208125, -0.02341024,
		-0.01550735, -0.00883517, -0.00365591, 0.00000000,
	}
)

func TestAirfoil_ReferenceSample(t *testing.T) {
	af, err := airfoil.New(symmetricParams())
	if err != nil {
		t.Fatalf("new airfoil: %v", err)
	}

	upper, err := af.UpperAll(refXUpper)
	if err != nil {
		t.Fatalf("evaluate upper: %v", err)
	}
	if diff := cmp.Diff(refZUpper, upper, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Fatalf("upper surface mismatch (-want +got):\n%s", diff)
	}

	lower, err := af.LowerAll(refXLower)
	if err != nil {
		t.Fatalf("evaluate lower: %v", err)
	}
	if diff := cmp.Diff(refZLower, lower, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Fatalf("lower surface mismatch (-want +got):\n%s", diff)
	}
}

func TestAirfoil_SymmetricParametersMirror(t *testing.T) {
	af := airfoil.MustNew(symmetricParams())
	xs, err := airfoil.CosineSpacing(41)
	if err != nil {
		t.Fatalf("spacing: %v", err)
	}
	upper, _ := af.UpperAll(xs)
	lower, _ := af.LowerAll(xs)
	for i := range lower {
		lower[i] = -lower[i]
	}
	if diff := cmp.Diff(upper, lower, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("surfaces are not mirrored (-upper +(-lower)):\n%s", diff)
	}
	for _, x := range xs {
		camber, err := af.Camber(x)
		if err != nil {
			t.Fatalf("camber(%v): %v", x, err)
		}
		if math.Abs(camber) > 1e-12 {
			t.Fatalf("expected flat mean line, camber(%v) = %g", x, camber)
		}
	}
}

func TestAirfoil_BoundaryConditions(t *testing.T) {
	for name, ps := range map[string]params.ParameterSet{
		"symmetric": symmetricParams(),
		"cambered":  cambered(),
	} {
		t.Run(name, func(t *testing.T) {
			af, err := airfoil.New(ps)
			if err != nil {
				t.Fatalf("new airfoil: %v", err)
			}
			up, lo := af.UpperCoefficients(), af.LowerCoefficients()

			assertClose(t, "z_up(x_up)", mustEval(t, airfoil.Evaluate, up, ps.XUp), ps.ZUp, 1e-9)
			assertClose(t, "z_lo(x_lo)", mustEval(t, airfoil.Evaluate, lo, ps.XLo), ps.ZLo, 1e-9)

			assertClose(t, "z_up(1)", mustEval(t, airfoil.Evaluate, up, 1), ps.ZTE+ps.DZTE/2, 1e-9)
			assertClose(t, "z_lo(1)", mustEval(t, airfoil.Evaluate, lo, 1), ps.ZTE-ps.DZTE/2, 1e-9)

			assertClose(t, "z_up(0)", mustEval(t, airfoil.Evaluate, up, 0), 0, 0)
			assertClose(t, "z_lo(0)", mustEval(t, airfoil.Evaluate, lo, 0), 0, 0)

			assertClose(t, "slope_up(x_up)", mustEval(t, airfoil.Slope, up, ps.XUp), 0, 1e-9)
			assertClose(t, "slope_lo(x_lo)", mustEval(t, airfoil.Slope, lo, ps.XLo), 0, 1e-9)

			assertClose(t, "curv_up(x_up)", mustEval(t, airfoil.Curvature, up, ps.XUp), ps.ZXXUp, 1e-8)
			assertClose(t, "curv_lo(x_lo)", mustEval(t, airfoil.Curvature, lo, ps.XLo), ps.ZXXLo, 1e-8)

			assertClose(t, "slope_up(1)", mustEval(t, airfoil.Slope, up, 1), math.Tan(ps.AlphaTE-ps.BetaTE/2), 1e-9)
			assertClose(t, "slope_lo(1)", mustEval(t, airfoil.Slope, lo, 1), math.Tan(ps.AlphaTE+ps.BetaTE/2), 1e-9)

			assertClose(t, "r_le upper", af.LeadingEdgeRadius(airfoil.SurfaceUpper), ps.RLE, 1e-12)
			assertClose(t, "r_le lower", af.LeadingEdgeRadius(airfoil.SurfaceLower), ps.RLE, 1e-12)
			if up[0] < 0 || lo[0] > 0 {
				t.Fatalf("expected a_0 signs (+, -), got (%g, %g)", up[0], lo[0])
			}

			thickness, err := af.Thickness(1)
			if err != nil {
				t.Fatalf("thickness: %v", err)
			}
			assertClose(t, "thickness(1)", thickness, ps.DZTE, 1e-9)
		})
	}
}

func TestAirfoil_ElementwiseConsistency(t *testing.T) {
	af := airfoil.MustNew(cambered())
	xs, _ := airfoil.Linspace(57)

	batch, err := af.UpperAll(xs)
	if err != nil {
		t.Fatalf("evaluate batch: %v", err)
	}
	single := make([]float64, len(xs))
	for i, x := range xs {
		if single[i], err = af.Upper(x); err != nil {
			t.Fatalf("evaluate %v: %v", x, err)
		}
	}
	if diff := cmp.Diff(single, batch); diff != "" {
		t.Fatalf("batch and single evaluation disagree (-single +batch):\n%s", diff)
	}
}

func TestAirfoil_CopyInSemantics(t *testing.T) {
	ps := cambered()
	af := airfoil.MustNew(ps)
	before, _ := af.Upper(0.3)

	ps.ZUp = 0.2
	ps.RLE = 0.5

	after, _ := af.Upper(0.3)
	if before != after {
		t.Fatalf("airfoil changed after caller mutated parameters: %v -> %v", before, after)
	}
	if af.Params().ZUp != 0.0587 {
		t.Fatalf("stored parameters changed: %+v", af.Params())
	}
}

func TestAirfoil_Errors(t *testing.T) {
	t.Run("negative radius", func(t *testing.T) {
		ps := symmetricParams()
		ps.RLE = -0.001
		af, err := airfoil.New(ps)
		if af != nil {
			t.Fatalf("expected no airfoil on error")
		}
		var domainErr *airfoil.DomainError
		if !errors.As(err, &domainErr) || domainErr.Field != params.FieldRLE {
			t.Fatalf("expected r_le domain error, got %v", err)
		}
		if !errors.Is(err, airfoil.ErrDomain) {
			t.Fatalf("expected ErrDomain, got %v", err)
		}
	})

	t.Run("non-positive crest", func(t *testing.T) {
		ps := symmetricParams()
		ps.XLo = 0
		if _, err := airfoil.New(ps); !errors.Is(err, airfoil.ErrDomain) {
			t.Fatalf("expected ErrDomain, got %v", err)
		}
	})

	t.Run("crest at trailing edge is singular", func(t *testing.T) {
		ps := symmetricParams()
		ps.XUp = 1
		_, err := airfoil.New(ps)
		if !errors.Is(err, airfoil.ErrSingularSystem) {
			t.Fatalf("expected ErrSingularSystem, got %v", err)
		}
		var singular *airfoil.SingularSystemError
		if !errors.As(err, &singular) {
			t.Fatalf("expected *SingularSystemError, got %T", err)
		}
		if singular.Surface != airfoil.SurfaceUpper || singular.Crest != 1 {
			t.Fatalf("unexpected singular details: %+v", singular)
		}
	})
}

func TestEvaluate_Positions(t *testing.T) {
	af := airfoil.MustNew(symmetricParams())
	up := af.UpperCoefficients()

	for _, x := range []float64{-1e-9, -0.5, math.NaN(), math.Inf(1)} {
		if _, err := airfoil.Evaluate(up, x); !errors.Is(err, airfoil.ErrDomain) {
			t.Fatalf("Evaluate(%v): expected ErrDomain, got %v", x, err)
		}
	}

	if _, err := airfoil.Slope(up, 0); !errors.Is(err, airfoil.ErrDomain) {
		t.Fatalf("Slope(0): expected ErrDomain, got %v", err)
	}
	if _, err := airfoil.Curvature(up, 0); !errors.Is(err, airfoil.ErrDomain) {
		t.Fatalf("Curvature(0): expected ErrDomain, got %v", err)
	}

	if _, err := airfoil.Evaluate(up, 1.2); err != nil {
		t.Fatalf("Evaluate beyond trailing edge: %v", err)
	}

	_, err := af.UpperAll([]float64{0, 0.5, -0.1, 0.7})
	if !errors.Is(err, airfoil.ErrDomain) {
		t.Fatalf("expected ErrDomain from batch, got %v", err)
	}
	var domainErr *airfoil.DomainError
	if !errors.As(err, &domainErr) || domainErr.Value != -0.1 {
		t.Fatalf("expected offending position -0.1, got %v", err)
	}
}

func TestAirfoil_ConcurrentEvaluation(t *testing.T) {
	af := airfoil.MustNew(cambered())
	xs, _ := airfoil.CosineSpacing(101)
	want, _ := af.LowerAll(xs)

	var wg sync.WaitGroup
	results := make([][]float64, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = af.LowerAll(xs)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("goroutine %d disagrees (-want +got):\n%s", i, diff)
		}
	}
}

func mustEval(t *testing.T, fn func(airfoil.Coefficients, float64) (float64, error), a airfoil.Coefficients, x float64) float64 {
	t.Helper()
	v, err := fn(a, x)
	if err != nil {
		t.Fatalf("evaluate at %v: %v", x, err)
	}
	return v
}

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s: got %.12g, want %.12g (tol %g)", label, got, want, tol)
	}
}
