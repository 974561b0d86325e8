package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Locator maps type names to source paths and confirms candidate files exist.
type Locator interface {
	PathForType(name string) (string, bool)
	Exists(path string) bool
}

// Loader executes a resolved template. owner is the element being rendered and
// is exposed to the template. The returned string is the captured output.
type Loader interface {
	Execute(path string, owner any) (string, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string, owner any) (string, error)

// Execute calls f.
func (f LoaderFunc) Execute(path string, owner any) (string, error) {
	return f(path, owner)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLocator sets the locator, overriding the process default.
func WithLocator(locator Locator) Option {
	return func(r *Resolver) {
		r.locator = locator
	}
}

// WithoutLocator disables the process default locator so only Identity.Source
// is used.
func WithoutLocator() Option {
	return func(r *Resolver) {
		r.locator = nil
	}
}

// WithLoader sets the loader, overriding the process default.
func WithLoader(loader Loader) Option {
	return func(r *Resolver) {
		if loader != nil {
			r.loader = loader
		}
	}
}

// WithExistsFunc replaces the existence check used when no locator is set.
func WithExistsFunc(fn func(path string) bool) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.exists = fn
		}
	}
}

// Resolver resolves and runs the template of a single element instance. The
// first resolution, successful or not, is cached for the Resolver's lifetime.
// It is safe for concurrent use.
type Resolver struct {
	locator Locator
	loader  Loader
	exists  func(path string) bool

	mu       sync.Mutex
	resolved bool
	path     string
	err      error
}

// NewResolver returns a Resolver seeded with the process defaults.
func NewResolver(options ...Option) *Resolver {
	locator, loader := Defaults()
	r := &Resolver{
		locator: locator,
		loader:  loader,
		exists:  fileExists,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve returns the template path for the first identity and variant that
// exists. ids are tried in order, so callers list the element's own type first
// and fallbacks such as embedded types after it.
func (r *Resolver) Resolve(ids []Identity, variants []string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.resolved {
		r.path, r.err = r.lookup(ids, variants)
		r.resolved = true
	}
	return r.path, r.err
}

// Path returns the cached resolution, if any.
func (r *Resolver) Path() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path, r.resolved && r.err == nil
}

// Run resolves the template and executes it with owner in scope.
func (r *Resolver) Run(owner any, ids []Identity, variants []string) (string, error) {
	path, err := r.Resolve(ids, variants)
	if err != nil {
		return "", err
	}
	if r.loader == nil {
		return "", ErrNoLoader
	}

	out, err := r.loader.Execute(path, owner)
	if err != nil {
		return "", wrapExecution(path, err)
	}
	return out, nil
}

func (r *Resolver) lookup(ids []Identity, variants []string) (string, error) {
	notFound := &NotFoundError{}
	if len(ids) > 0 {
		notFound.Type = ids[0].ShortName()
	}

	for _, id := range ids {
		source := r.sourcePath(id)
		if source == "" {
			continue
		}
		base := strings.TrimSuffix(source, filepath.Ext(source))
		for _, variant := range variants {
			variant = strings.TrimPrefix(strings.TrimSpace(variant), ".")
			if variant == "" {
				continue
			}
			candidate := base + "." + variant
			notFound.Candidates = append(notFound.Candidates, candidate)
			if r.candidateExists(candidate) {
				return candidate, nil
			}
		}
	}
	return "", notFound
}

func (r *Resolver) sourcePath(id Identity) string {
	if r.locator != nil && id.Name != "" {
		if path, ok := r.locator.PathForType(id.Name); ok && path != "" {
			return path
		}
	}
	return id.Source
}

func (r *Resolver) candidateExists(path string) bool {
	if r.locator != nil {
		return r.locator.Exists(path)
	}
	return r.exists(path)
}

func wrapExecution(path string, err error) error {
	execErr := &ExecutionError{
		Template: filepath.Base(path),
		Path:     path,
		Err:      err,
	}
	var lineErr LineError
	if errors.As(err, &lineErr) {
		execErr.Line = lineErr.Line()
	}
	return execErr
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
