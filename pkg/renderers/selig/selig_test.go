package selig_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/render"
	"github.com/goliatone/go-parsec/pkg/renderers/selig"
)

func TestRenderer_SeligOrder(t *testing.T) {
	profile := airfoil.Profile{
		Name:  "sample",
		X:     []float64{0, 0.5, 1},
		Upper: []float64{0, 0.0625, 0.001},
		Lower: []float64{0, -0.0625, -0.001},
	}

	out, err := selig.New().Render(context.Background(), profile, render.RenderOptions{Precision: 4})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"sample",
		"  1.0000  0.0010",
		"  0.5000  0.0625",
		"  0.0000  0.0000",
		"  0.5000 -0.0625",
		"  1.0000 -0.0010",
		"",
	}, "\n")
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("selig output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_TitleAndDefaults(t *testing.T) {
	profile := airfoil.Profile{X: []float64{0, 1}, Upper: []float64{0, 0}, Lower: []float64{0, 0}}

	out, err := selig.New().Render(context.Background(), profile, render.RenderOptions{Title: "  my\nfoil "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if lines[0] != "my foil" {
		t.Fatalf("expected single-line title, got %q", lines[0])
	}
	if len(lines) != 4 {
		t.Fatalf("expected title plus 3 points, got %d lines", len(lines))
	}
	if lines[1] != "  1.000000  0.000000" {
		t.Fatalf("expected default precision, got %q", lines[1])
	}
}

func TestRenderer_Contract(t *testing.T) {
	r := selig.New()
	if r.Name() != "selig" || r.Extension() != "dat" {
		t.Fatalf("unexpected metadata %s/%s", r.Name(), r.Extension())
	}
	if _, err := r.Render(context.Background(), airfoil.Profile{}, render.RenderOptions{}); !errors.Is(err, render.ErrEmptyProfile) {
		t.Fatalf("expected ErrEmptyProfile, got %v", err)
	}
}
