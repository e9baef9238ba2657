package parsec

import (
	"io/fs"

	"github.com/goliatone/go-parsec/pkg/catalog"
	"github.com/goliatone/go-parsec/pkg/renderers/svg"
)

// EmbeddedTemplates exposes the built-in SVG templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return svg.TemplatesFS()
}

// EmbeddedCatalog exposes the bundled catalog of named parameter sets.
func EmbeddedCatalog() fs.FS {
	return catalog.EmbeddedFS()
}
