package render

import (
	"context"

	"github.com/goliatone/go-parsec/pkg/airfoil"
)

// Renderer converts a sampled airfoil into a byte representation (CSV, SVG,
// PNG, coordinate files).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, profile airfoil.Profile, options RenderOptions) ([]byte, error)
}
