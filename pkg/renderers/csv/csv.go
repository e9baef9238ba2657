// Package csv exports sampled airfoils as comma separated x,z_upper,z_lower
// rows.
package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/render"
)

// Header is the first row written unless disabled.
var Header = []string{"x", "z_upper", "z_lower"}

// Option configures the renderer.
type Option func(*Renderer)

// WithHeader toggles the header row.
func WithHeader(enabled bool) Option {
	return func(r *Renderer) {
		r.header = enabled
	}
}

// WithComma overrides the field separator, for example ';' for locales that
// use a decimal comma in spreadsheets.
func WithComma(comma rune) Option {
	return func(r *Renderer) {
		if comma != 0 {
			r.comma = comma
		}
	}
}

// Renderer writes one row per chordwise position.
type Renderer struct {
	header bool
	comma  rune
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the CSV renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{header: true, comma: ','}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string        { return "csv" }
func (r *Renderer) ContentType() string { return "text/csv; charset=utf-8" }
func (r *Renderer) Extension() string   { return "csv" }

// Render writes the profile. RenderOptions.Precision fixes the number of
// decimals; zero writes the shortest exact representation.
func (r *Renderer) Render(ctx context.Context, profile airfoil.Profile, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := render.CheckProfile(profile); err != nil {
		return nil, fmt.Errorf("csv renderer: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = r.comma

	if r.header {
		if err := w.Write(Header); err != nil {
			return nil, fmt.Errorf("csv renderer: write header: %w", err)
		}
	}

	format := formatter(options.Precision)
	row := make([]string, 3)
	for i, x := range profile.X {
		row[0], row[1], row[2] = format(x), format(profile.Upper[i]), format(profile.Lower[i])
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv renderer: write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv renderer: flush: %w", err)
	}
	return buf.Bytes(), nil
}

func formatter(precision int) func(float64) string {
	if precision > 0 {
		return func(v float64) string { return strconv.FormatFloat(v, 'f', precision, 64) }
	}
	return func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
}
