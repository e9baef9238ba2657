package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownRenderer reports a lookup for a name or extension nobody
// registered.
var ErrUnknownRenderer = errors.New("render: unknown renderer")

// Extensioner is implemented by renderers that own a file extension, letting
// the registry infer a renderer from an output path.
type Extensioner interface {
	Extension() string
}

// Registry stores renderers by name and, when they declare one, by file
// extension.
type Registry struct {
	mu         sync.RWMutex
	renderers  map[string]Renderer
	extensions map[string]string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers:  make(map[string]Renderer),
		extensions: make(map[string]string),
	}
}

// Register adds a renderer by its Name(). Duplicate names or extensions
// return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := strings.TrimSpace(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}
	ext := ""
	if e, ok := renderer.(Extensioner); ok {
		ext = normaliseExt(e.Extension())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	if owner, exists := r.extensions[ext]; ext != "" && exists {
		return fmt.Errorf("render: extension %q already claimed by %q", ext, owner)
	}

	r.renderers[name] = renderer
	if ext != "" {
		r.extensions[ext] = name
	}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRenderer, name, strings.Join(r.namesLocked(), ", "))
	}
	return renderer, nil
}

// Resolve picks a renderer by explicit name, or by the extension of path when
// name is empty.
func (r *Registry) Resolve(name, path string) (Renderer, error) {
	if name = strings.TrimSpace(name); name != "" {
		return r.Get(name)
	}
	ext := normaliseExt(filepath.Ext(path))
	if ext == "" {
		return nil, fmt.Errorf("%w: no renderer named and %q has no extension", ErrUnknownRenderer, path)
	}

	r.mu.RLock()
	owner, ok := r.extensions[ext]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: no renderer handles %q files", ErrUnknownRenderer, ext)
	}
	return r.Get(owner)
}

// List returns a sorted list of renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normaliseExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
