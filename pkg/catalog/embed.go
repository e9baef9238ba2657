package catalog

import (
	"embed"
	"io/fs"
)

//go:embed defaults/*
var embeddedCatalog embed.FS

// EmbeddedFS returns the bundled catalog files. Callers may pass this
// filesystem to LoadFS or use Default directly.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "defaults")
	if err != nil {
		// the embed directive guarantees the subpath exists
		panic(err)
	}
	return sub
}

// Default loads the bundled catalog.
func Default() (*Store, error) {
	return LoadFS(EmbeddedFS())
}
