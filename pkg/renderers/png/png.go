// Package png plots sampled airfoils to PNG images with gonum/plot. Upper and
// lower surfaces are drawn as dashed red and blue lines over a grid.
package png

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/render"
)

// Default image size in inches.
const (
	DefaultWidth  = 8.0
	DefaultHeight = 3.0
)

var (
	upperColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	lowerColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

type Option func(*Renderer)

// WithLegend toggles the surface legend.
func WithLegend(enabled bool) Option {
	return func(r *Renderer) {
		r.legend = enabled
	}
}

// WithDPI overrides the raster resolution.
func WithDPI(dpi int) Option {
	return func(r *Renderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

type Renderer struct {
	legend bool
	dpi    int
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{legend: true, dpi: 96}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string        { return "png" }
func (r *Renderer) ContentType() string { return "image/png" }
func (r *Renderer) Extension() string   { return "png" }

// Render plots the profile. Width and Height are inches.
func (r *Renderer) Render(ctx context.Context, profile airfoil.Profile, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := render.CheckProfile(profile); err != nil {
		return nil, fmt.Errorf("png renderer: %w", err)
	}

	p := plot.New()
	p.Title.Text = render.TitleFor(options, profile.Name, "PARSEC airfoil")
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "z/c"
	p.Add(plotter.NewGrid())

	upper, err := surfaceLine(profile.X, profile.Upper, upperColor)
	if err != nil {
		return nil, fmt.Errorf("png renderer: upper surface: %w", err)
	}
	lower, err := surfaceLine(profile.X, profile.Lower, lowerColor)
	if err != nil {
		return nil, fmt.Errorf("png renderer: lower surface: %w", err)
	}
	p.Add(upper, lower)
	if r.legend {
		p.Legend.Add("upper", upper)
		p.Legend.Add("lower", lower)
		p.Legend.Top = true
	}

	width, height := options.Width, options.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch),
		vgimg.UseDPI(r.dpi),
	)
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("png renderer: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func surfaceLine(xs, zs []float64, c color.Color) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = zs[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	return line, nil
}
