// Package svg draws sampled airfoils as standalone SVG documents. Markup comes
// from a pongo2 template, colours from a go-theme manifest, and user supplied
// labels pass through a strict bluemonday policy before they reach the
// document.
package svg

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/render"
	rendertemplate "github.com/goliatone/go-parsec/pkg/render/template"
	"github.com/goliatone/go-parsec/pkg/render/template/gotemplate"
)

const (
	DefaultWidth = 800.0
	margin       = 40.0
	titleBand    = 24.0
	gridSteps    = 10
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	manifest         *theme.Manifest
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme replaces the built-in palette manifest. Tokens missing from the
// manifest keep their built-in colours.
func WithTheme(manifest *theme.Manifest) Option {
	return func(cfg *config) {
		if manifest != nil {
			cfg.manifest = manifest
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	manifest  *theme.Manifest
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the SVG renderer. The manifest is registered with a go-theme
// registry so malformed manifests fail here rather than mid-render.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), manifest: DefaultManifest()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if err := theme.NewRegistry().Register(cfg.manifest); err != nil {
		return nil, fmt.Errorf("svg renderer: register theme %q: %w", cfg.manifest.Name, err)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		if cfg.templateFS == nil {
			cfg.templateFS = TemplatesFS()
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("svg renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, manifest: cfg.manifest}, nil
}

func (r *Renderer) Name() string        { return "svg" }
func (r *Renderer) ContentType() string { return "image/svg+xml" }
func (r *Renderer) Extension() string   { return "svg" }

// Render draws both surfaces, the camber line and the chord. Width and Height
// are pixels; a zero Height is derived from the profile so chord and
// thickness share one scale.
func (r *Renderer) Render(ctx context.Context, profile airfoil.Profile, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("svg renderer: template renderer is nil")
	}
	if err := render.CheckProfile(profile); err != nil {
		return nil, fmt.Errorf("svg renderer: %w", err)
	}

	st, err := resolveStyle(r.manifest, options.Variant)
	if err != nil {
		return nil, err
	}

	vp := newViewport(profile, options.Width, options.Height)
	camber := make([]float64, len(profile.X))
	for i := range profile.X {
		camber[i] = (profile.Upper[i] + profile.Lower[i]) / 2
	}

	grid := make([]map[string]any, 0, gridSteps+1)
	for i := 0; i <= gridSteps; i++ {
		x := vp.px(vp.minX + (vp.maxX-vp.minX)*float64(i)/gridSteps)
		grid = append(grid, map[string]any{"x": x, "y1": vp.top, "y2": vp.height - margin})
	}

	data := map[string]any{
		"width":       vp.width,
		"height":      vp.height,
		"margin":      margin,
		"title_y":     titleBand,
		"variant":     st.variant,
		"title":       sanitizeLabel(render.TitleFor(options, profile.Name, "PARSEC airfoil")),
		"description": sanitizeLabel(options.Description),
		"palette":     st.tokens,
		"grid":        grid,
		"chord":       map[string]any{"x1": vp.px(vp.minX), "x2": vp.px(vp.maxX), "y": vp.py(0)},
		"upper_path":  vp.path(profile.X, profile.Upper),
		"lower_path":  vp.path(profile.X, profile.Lower),
		"camber_path": vp.path(profile.X, camber),
	}

	result, err := r.templates.RenderTemplate(st.template, data)
	if err != nil {
		return nil, fmt.Errorf("svg renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// viewport maps chord coordinates to pixels with a single scale on both axes.
type viewport struct {
	width, height float64
	top           float64
	scale         float64
	minX, maxX    float64
	midZ          float64
	centerY       float64
}

func newViewport(profile airfoil.Profile, width, height float64) viewport {
	if width <= 0 {
		width = DefaultWidth
	}
	minX, maxX := profile.X[0], profile.X[len(profile.X)-1]
	span := maxX - minX
	if span <= 0 {
		span = 1
	}
	minZ, maxZ := profile.Bounds()
	thickness := math.Max(maxZ-minZ, 1e-9)

	top := margin + titleBand
	scale := (width - 2*margin) / span
	if height <= 0 {
		height = math.Ceil(top + margin + thickness*scale + 2*margin)
	} else if avail := height - top - margin; avail > 0 && thickness*scale > avail {
		scale = avail / thickness
	}

	return viewport{
		width:   width,
		height:  height,
		top:     top,
		scale:   scale,
		minX:    minX,
		maxX:    maxX,
		midZ:    (maxZ + minZ) / 2,
		centerY: top + (height-top-margin)/2,
	}
}

func (v viewport) px(x float64) float64 {
	return margin + (x-v.minX)*v.scale
}

func (v viewport) py(z float64) float64 {
	return v.centerY - (z-v.midZ)*v.scale
}

func (v viewport) path(xs, zs []float64) string {
	var b strings.Builder
	for i := range xs {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(strconv.FormatFloat(v.px(xs[i]), 'f', 2, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(v.py(zs[i]), 'f', 2, 64))
	}
	return b.String()
}
