package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-ui/pkg/template"
)

// DefaultOwnerKey is the context key holding the element being rendered.
const DefaultOwnerKey = "element"

// Option configures the Loader before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	ownerKey   string
	filters    map[string]FilterFunc
	globalData map[string]any
}

// FilterFunc is the signature accepted by WithFilter.
type FilterFunc func(input any, param any) (any, error)

// WithBaseDir resolves relative template paths against dir on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithOwnerKey overrides the context key holding the element.
func WithOwnerKey(key string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			cfg.ownerKey = trimmed
		}
	}
}

// WithFilter registers a filter when the loader is built.
func WithFilter(name string, fn FilterFunc) Option {
	return func(cfg *config) {
		name = strings.TrimSpace(name)
		if name == "" || fn == nil {
			return
		}
		if cfg.filters == nil {
			cfg.filters = make(map[string]FilterFunc)
		}
		cfg.filters[name] = fn
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Loader executes template files with pongo2. Parsed templates are cached by
// path.
type Loader struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
	ownerKey    string
}

var _ template.Loader = (*Loader)(nil)

var bufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// New constructs a Loader. Without WithBaseDir or WithFS templates are read
// from the working directory, and absolute paths are used as-is.
func New(options ...Option) (*Loader, error) {
	cfg := &config{ownerKey: DefaultOwnerKey}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" || cfg.templates == nil {
		local, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create local loader: %w", err)
		}
		loaders = append(loaders, local)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	l := &Loader{
		templateSet: pongo2.NewSet("go-ui", loaders...),
		templates:   make(map[string]*pongo2.Template),
		ownerKey:    cfg.ownerKey,
	}
	registerDefaultFilters()

	if len(cfg.globalData) > 0 {
		l.templateSet.Globals = make(pongo2.Context, len(cfg.globalData))
		l.templateSet.Globals.Update(pongo2.Context(cfg.globalData))
	}
	for name, fn := range cfg.filters {
		if pongo2.FilterExists(name) {
			continue
		}
		if err := RegisterFilter(name, fn); err != nil {
			return nil, fmt.Errorf("pongo: register filter %q: %w", name, err)
		}
	}

	return l, nil
}

// Execute renders the template at path with owner bound to the owner key and
// returns the captured output.
func (l *Loader) Execute(path string, owner any) (string, error) {
	if l == nil || l.templateSet == nil {
		return "", errors.New("pongo: loader is nil")
	}

	tmpl, err := l.getTemplate(path)
	if err != nil {
		return "", err
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	if err := tmpl.ExecuteWriter(pongo2.Context{l.ownerKey: owner}, buf); err != nil {
		return "", convertError(path, err)
	}
	return buf.String(), nil
}

// Render executes an inline template source. It is used by hosts that keep
// small templates in configuration rather than on disk.
func (l *Loader) Render(source string, owner any) (string, error) {
	if l == nil || l.templateSet == nil {
		return "", errors.New("pongo: loader is nil")
	}

	tmpl, err := l.templateSet.FromString(source)
	if err != nil {
		return "", convertError("", err)
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	if err := tmpl.ExecuteWriter(pongo2.Context{l.ownerKey: owner}, buf); err != nil {
		return "", convertError("", err)
	}
	return buf.String(), nil
}

// RegisterFilter registers a pongo2 filter. pongo2 filters are process wide,
// so registering an existing name is an error.
func RegisterFilter(name string, fn FilterFunc) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already exists", name)
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
	return pongo2.RegisterFilter(name, filter)
}

func (l *Loader) getTemplate(path string) (*pongo2.Template, error) {
	l.mu.RLock()
	if tmpl, ok := l.templates[path]; ok {
		l.mu.RUnlock()
		return tmpl, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	if tmpl, ok := l.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := l.templateSet.FromFile(path)
	if err != nil {
		return nil, convertError(path, err)
	}

	l.templates[path] = tmpl
	return tmpl, nil
}
