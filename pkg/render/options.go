package render

// RenderOptions describe per-request presentation data that renderers can use
// without touching the sampled profile.
type RenderOptions struct {
	// Title overrides the profile name in headers and plot titles.
	Title string
	// Description is free text shown by renderers that support annotations.
	// Renderers producing markup sanitise it before embedding.
	Description string
	// Width and Height size graphical output. Units are renderer specific
	// (pixels for SVG, inches for PNG); zero selects the renderer default.
	Width  float64
	Height float64
	// Variant selects a theme variant (for example "dark") in renderers that
	// support theming.
	Variant string
	// Precision is the number of decimals written by text exporters. Zero
	// selects the renderer default.
	Precision int
}

// TitleFor returns options.Title, falling back to the profile name and then
// to fallback.
func TitleFor(options RenderOptions, name, fallback string) string {
	if options.Title != "" {
		return options.Title
	}
	if name != "" {
		return name
	}
	return fallback
}
