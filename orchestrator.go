package parsec

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/orchestrator"
	"github.com/goliatone/go-parsec/pkg/render"
)

// Request aliases orchestrator.Request for callers using the root package.
type Request = orchestrator.Request

// RenderOptions describes per-request presentation settings.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate renders the requested airfoil with the named renderer (csv,
// selig, svg, png, or any renderer supplied through WithRegistry).
func Generate(ctx context.Context, req Request, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, req)
}

// WithRegistry replaces the built-in renderers.
func WithRegistry(registry *render.Registry) orchestrator.Option {
	return orchestrator.WithRegistry(registry)
}

// WithCatalogFS replaces the embedded catalog; nil disables it.
func WithCatalogFS(fsys fs.FS) orchestrator.Option {
	return orchestrator.WithCatalogFS(fsys)
}

// WithSpacing selects the chordwise distribution (linear or cosine).
func WithSpacing(spacing airfoil.Spacing) orchestrator.Option {
	return orchestrator.WithSpacing(spacing)
}

// WithPoints sets the number of chordwise positions.
func WithPoints(n int) orchestrator.Option {
	return orchestrator.WithPoints(n)
}
