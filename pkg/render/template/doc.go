// Package template defines the renderer-agnostic template seam used by the
// markup exporters. The gotemplate subpackage provides the pongo2-backed
// implementation.
package template
