// Package selig writes sampled airfoils in the Selig coordinate format: a
// name line followed by x z pairs running from the trailing edge over the
// upper surface to the leading edge and back along the lower surface.
package selig

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/render"
)

// DefaultPrecision is the number of decimals used when RenderOptions leaves
// Precision at zero.
const DefaultPrecision = 6

type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the Selig renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string        { return "selig" }
func (Renderer) ContentType() string { return "text/plain; charset=utf-8" }
func (Renderer) Extension() string   { return "dat" }

func (Renderer) Render(ctx context.Context, profile airfoil.Profile, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := render.CheckProfile(profile); err != nil {
		return nil, fmt.Errorf("selig renderer: %w", err)
	}

	precision := options.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	// Each column is wide enough for a sign, the integer digit and the point.
	width := precision + 3

	var buf bytes.Buffer
	title := strings.Join(strings.Fields(render.TitleFor(options, profile.Name, "PARSEC airfoil")), " ")
	buf.WriteString(title)
	buf.WriteByte('\n')
	for _, pt := range profile.Points() {
		fmt.Fprintf(&buf, " %*.*f %*.*f\n", width, precision, pt.X, width, precision, pt.Z)
	}
	return buf.Bytes(), nil
}
