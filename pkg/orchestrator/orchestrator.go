package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/catalog"
	"github.com/goliatone/go-parsec/pkg/javafoil"
	"github.com/goliatone/go-parsec/pkg/params"
	"github.com/goliatone/go-parsec/pkg/render"
	csvrenderer "github.com/goliatone/go-parsec/pkg/renderers/csv"
	pngrenderer "github.com/goliatone/go-parsec/pkg/renderers/png"
	"github.com/goliatone/go-parsec/pkg/renderers/selig"
	"github.com/goliatone/go-parsec/pkg/renderers/svg"
)

const (
	defaultRendererName = "csv"
	// DefaultPoints is the number of chordwise positions sampled when neither
	// the request nor the options choose one.
	DefaultPoints = 101
)

// ErrNoParameters is returned when a request names no parameter source.
var ErrNoParameters = errors.New("orchestrator: one of params, parsec11 or name is required")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request names
// neither a renderer nor an output path with a known extension.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithCatalogFS supplies an fs.FS holding catalog documents. Pass nil to
// disable the embedded defaults.
func WithCatalogFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.catalogFS = fsys
		o.catalogSpecified = true
	}
}

// WithSpacing selects the default chordwise distribution.
func WithSpacing(spacing airfoil.Spacing) Option {
	return func(o *Orchestrator) {
		if spacing != "" {
			o.spacing = spacing
		}
	}
}

// WithPoints sets the default number of chordwise positions.
func WithPoints(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.points = n
		}
	}
}

// Orchestrator coordinates the pipeline from a parameter source to rendered
// output: resolve parameters, solve the airfoil, sample it, render. It
// applies defaults (embedded catalog, built-in renderers, cosine spacing)
// while remaining open to dependency injection.
type Orchestrator struct {
	registry         *render.Registry
	defaultRenderer  string
	catalogFS        fs.FS
	catalogSpecified bool
	catalog          *catalog.Store
	spacing          airfoil.Spacing
	points           int
	initialiseErr    error
	defaultsApplied  bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		spacing:         airfoil.SpacingCosine,
		points:          DefaultPoints,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one airfoil to render. Exactly one of Params, Parsec11
// and Name must be set.
type Request struct {
	// Params supplies the parameter record directly.
	Params *params.ParameterSet

	// Parsec11 is a PARSEC-11 interchange string.
	Parsec11 string

	// Name selects an entry from the catalog.
	Name string

	// Renderer names the renderer to use. When empty the extension of Output
	// decides, then the configured default renderer.
	Renderer string

	// Output is the destination path, used only to infer the renderer.
	Output string

	// Points and Spacing override the configured sampling.
	Points  int
	Spacing airfoil.Spacing

	// RenderOptions carries presentation settings handed to the renderer.
	RenderOptions render.RenderOptions
}

// Result is a rendered airfoil together with the data it was drawn from.
type Result struct {
	Output      []byte
	ContentType string
	Renderer    string
	Profile     airfoil.Profile
}

// Generate resolves, solves, samples and renders the requested airfoil and
// returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Run is Generate returning the sampled profile and the renderer used.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	profile, err := o.Sample(ctx, req)
	if err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer, req.Output)
	if err != nil {
		return Result{}, err
	}

	output, err := renderer.Render(ctx, profile, req.RenderOptions)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return Result{
		Output:      output,
		ContentType: renderer.ContentType(),
		Renderer:    renderer.Name(),
		Profile:     profile,
	}, nil
}

// Sample resolves and solves the requested airfoil and evaluates it at the
// configured positions without rendering.
func (o *Orchestrator) Sample(ctx context.Context, req Request) (airfoil.Profile, error) {
	if ctx == nil {
		return airfoil.Profile{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return airfoil.Profile{}, err
	}
	if err := o.initialiseErr; err != nil {
		return airfoil.Profile{}, err
	}

	name, ps, err := o.ResolveParams(req)
	if err != nil {
		return airfoil.Profile{}, err
	}

	foil, err := airfoil.New(ps)
	if err != nil {
		return airfoil.Profile{}, fmt.Errorf("orchestrator: solve %s: %w", describeSource(name), err)
	}

	spacing, points := o.spacing, o.points
	if req.Spacing != "" {
		spacing = req.Spacing
	}
	if req.Points > 0 {
		points = req.Points
	}
	xs, err := spacing.Positions(points)
	if err != nil {
		return airfoil.Profile{}, fmt.Errorf("orchestrator: sample positions: %w", err)
	}

	profile, err := foil.Sample(name, xs)
	if err != nil {
		return airfoil.Profile{}, fmt.Errorf("orchestrator: sample %s: %w", describeSource(name), err)
	}
	return profile, nil
}

// ResolveParams returns the parameter record a request refers to and the
// name to label it with (the catalog name, or empty).
func (o *Orchestrator) ResolveParams(req Request) (string, params.ParameterSet, error) {
	sources := 0
	if req.Params != nil {
		sources++
	}
	if strings.TrimSpace(req.Parsec11) != "" {
		sources++
	}
	if strings.TrimSpace(req.Name) != "" {
		sources++
	}
	switch {
	case sources == 0:
		return "", params.ParameterSet{}, ErrNoParameters
	case sources > 1:
		return "", params.ParameterSet{}, errors.New("orchestrator: params, parsec11 and name are mutually exclusive")
	}

	switch {
	case req.Params != nil:
		return "", *req.Params, nil
	case strings.TrimSpace(req.Parsec11) != "":
		ps, err := javafoil.Parse(req.Parsec11)
		if err != nil {
			return "", params.ParameterSet{}, fmt.Errorf("orchestrator: %w", err)
		}
		return "", ps, nil
	default:
		name := strings.TrimSpace(req.Name)
		entry, ok := o.Catalog().Get(name)
		if !ok {
			return "", params.ParameterSet{}, fmt.Errorf("orchestrator: airfoil %q not found in catalog (available: %s)", name, strings.Join(o.Catalog().Names(), ", "))
		}
		return entry.Name, entry.Params, nil
	}
}

// Catalog returns the loaded catalog; it is empty when none was configured.
func (o *Orchestrator) Catalog() *catalog.Store {
	if o.catalog == nil {
		empty, _ := catalog.LoadFS(nil)
		return empty
	}
	return o.catalog
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) rendererFor(name, output string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	if name != "" || output != "" {
		renderer, err := o.registry.Resolve(name, output)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	if o.defaultRenderer != "" {
		if renderer, err := o.registry.Get(o.defaultRenderer); err == nil {
			return renderer, nil
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = err
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.ensureCatalog()

	o.defaultsApplied = true
}

func (o *Orchestrator) ensureCatalog() {
	if !o.catalogSpecified && o.catalogFS == nil {
		o.catalogFS = catalog.EmbeddedFS()
	}
	if o.catalogFS == nil {
		return
	}

	store, err := catalog.LoadFS(o.catalogFS)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load catalog: %w", err)
		return
	}
	o.catalog = store
}

// DefaultRegistry returns a registry holding the built-in csv, selig, svg and
// png renderers.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(csvrenderer.New())
	registry.MustRegister(selig.New())
	registry.MustRegister(pngrenderer.New())

	svgRenderer, err := svg.New()
	if err != nil {
		return registry, fmt.Errorf("orchestrator: default svg renderer: %w", err)
	}
	registry.MustRegister(svgRenderer)
	return registry, nil
}

func describeSource(name string) string {
	if name == "" {
		return "airfoil"
	}
	return fmt.Sprintf("airfoil %q", name)
}
