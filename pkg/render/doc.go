// Package render defines the exporter contract shared by the renderers under
// pkg/renderers and a name-keyed registry the CLI and the root facade use to
// pick one at runtime.
package render
