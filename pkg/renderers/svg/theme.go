package svg

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ErrUnknownVariant reports a variant the manifest does not define.
var ErrUnknownVariant = errors.New("svg renderer: unknown theme variant")

// Palette token keys read from the theme manifest.
const (
	TokenBackground = "background"
	TokenGrid       = "grid"
	TokenChord      = "chord"
	TokenUpper      = "upper"
	TokenLower      = "lower"
	TokenCamber     = "camber"
	TokenText       = "text"
)

// TemplateProfile is the manifest template key for the plot document.
const TemplateProfile = "svg.profile"

var defaultTokens = map[string]string{
	TokenBackground: "#ffffff",
	TokenGrid:       "#e6e6e6",
	TokenChord:      "#9a9a9a",
	TokenUpper:      "#d62728",
	TokenLower:      "#1f77b4",
	TokenCamber:     "#7f7f7f",
	TokenText:       "#222222",
}

// DefaultManifest is the built-in palette: red upper and blue lower contours
// on a light grid, plus a "dark" variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "parsec",
		Version: "1.0.0",
		Tokens:  copyTokens(defaultTokens),
		Templates: map[string]string{
			TemplateProfile: "templates/profile.tmpl",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					TokenBackground: "#1b1d21",
					TokenGrid:       "#30343b",
					TokenChord:      "#6c717a",
					TokenUpper:      "#ff6b6b",
					TokenLower:      "#4dabf7",
					TokenCamber:     "#adb5bd",
					TokenText:       "#f1f3f5",
				},
			},
		},
	}
}

// style is the resolved palette and template for one render.
type style struct {
	variant  string
	tokens   map[string]string
	template string
}

// resolveStyle layers built-in tokens, the manifest tokens and the variant
// overrides, in that order.
func resolveStyle(manifest *theme.Manifest, variant string) (style, error) {
	variant = strings.TrimSpace(variant)
	out := style{
		variant:  variant,
		tokens:   copyTokens(defaultTokens),
		template: "templates/profile.tmpl",
	}
	if manifest == nil {
		if variant != "" {
			return style{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
		}
		return out, nil
	}

	merge(out.tokens, manifest.Tokens)
	if tpl := manifest.Templates[TemplateProfile]; tpl != "" {
		out.template = tpl
	}

	if variant == "" {
		return out, nil
	}
	v, ok := manifest.Variants[variant]
	if !ok {
		return style{}, fmt.Errorf("%w: %q (theme %s)", ErrUnknownVariant, variant, manifest.Name)
	}
	merge(out.tokens, v.Tokens)
	if tpl := v.Templates[TemplateProfile]; tpl != "" {
		out.template = tpl
	}
	return out, nil
}

func merge(dst, src map[string]string) {
	for key, value := range src {
		if value = strings.TrimSpace(value); value != "" {
			dst[key] = value
		}
	}
}

func copyTokens(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
