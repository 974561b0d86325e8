package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-ui/pkg/template"
)

var _ template.Locator = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithFS checks template existence against fsys instead of the OS
// filesystem. Paths are then relative to the root of fsys.
func WithFS(fsys fs.FS) Option {
	return func(r *Registry) {
		r.fsys = fsys
	}
}

// Registry stores template source paths by element type name.
type Registry struct {
	mu    sync.RWMutex
	types map[string]string
	fsys  fs.FS
}

// NewRegistry creates an empty registry.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{types: make(map[string]string)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register maps name to a template source path. Duplicate names return an
// error.
func (r *Registry) Register(name, sourcePath string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("locator: type name is required")
	}
	sourcePath = strings.TrimSpace(sourcePath)
	if sourcePath == "" {
		return fmt.Errorf("locator: path for %q is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.types[name]; exists {
		return fmt.Errorf("locator: type %q already registered (%s)", name, existing)
	}
	r.types[name] = sourcePath
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name, sourcePath string) {
	if err := r.Register(name, sourcePath); err != nil {
		panic(err)
	}
}

// PathForType implements template.Locator.
func (r *Registry) PathForType(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.types[name]
	return p, ok
}

// Exists implements template.Locator.
func (r *Registry) Exists(p string) bool {
	return exists(r.fsys, p)
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func exists(fsys fs.FS, p string) bool {
	if p == "" {
		return false
	}
	if fsys == nil {
		info, err := os.Stat(p)
		return err == nil && !info.IsDir()
	}
	info, err := fs.Stat(fsys, fsPath(p))
	return err == nil && !info.IsDir()
}

// fsPath converts p into the unrooted form io/fs expects.
func fsPath(p string) string {
	cleaned := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
