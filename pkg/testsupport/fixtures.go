package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/javafoil"
	"github.com/goliatone/go-parsec/pkg/params"
)

// Interchange strings shared by tests across packages.
const (
	// SymmetricParsec11 is the symmetric section behind the 31-point
	// reference arrays.
	SymmetricParsec11 = "Parsec-11 [0.01:0.4:0.075:-0.1:0.4:-0.075:0.1:0:0:0:20]"
	// JavaFoilParsec11 is a cambered section as exported by JavaFoil.
	JavaFoilParsec11 = "Parsec-11 [0.0083:0.423:0.0587:-0.347:0.358:-0.032:0.417:0:0:10.03:5.64]"
)

// SymmetricParams returns the parameters of SymmetricParsec11.
func SymmetricParams(t *testing.T) params.ParameterSet {
	t.Helper()
	return mustParse(t, SymmetricParsec11)
}

// JavaFoilParams returns the parameters of JavaFoilParsec11.
func JavaFoilParams(t *testing.T) params.ParameterSet {
	t.Helper()
	return mustParse(t, JavaFoilParsec11)
}

// SymmetricProfile solves the symmetric section and samples it at n cosine
// spaced positions.
func SymmetricProfile(t *testing.T, name string, n int) airfoil.Profile {
	t.Helper()

	foil, err := airfoil.New(SymmetricParams(t))
	if err != nil {
		t.Fatalf("solve symmetric section: %v", err)
	}
	xs, err := airfoil.CosineSpacing(n)
	if err != nil {
		t.Fatalf("spacing: %v", err)
	}
	profile, err := foil.Sample(name, xs)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	return profile
}

func mustParse(t *testing.T, raw string) params.ParameterSet {
	t.Helper()
	ps, err := javafoil.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return ps
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
