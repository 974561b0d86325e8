package locator

import (
	"fmt"
	"io/fs"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ui/pkg/template"
)

var (
	_ template.Locator    = (*Theme)(nil)
	_ theme.ThemeSelector = StaticSelector{}
)

// ThemeOption configures a Theme.
type ThemeOption func(*Theme)

// WithThemeFS checks themed template existence against fsys.
func WithThemeFS(fsys fs.FS) ThemeOption {
	return func(t *Theme) {
		t.fsys = fsys
	}
}

// Theme resolves element templates from a go-theme selection. Variant
// templates win over manifest templates, and anything the theme does not
// override is delegated to the fallback locator.
type Theme struct {
	selector theme.ThemeSelector
	name     string
	variant  string
	fallback template.Locator
	fsys     fs.FS

	once      sync.Once
	templates map[string]string
	err       error
}

// NewTheme creates a locator for the named theme and variant. fallback may
// be nil.
func NewTheme(selector theme.ThemeSelector, name, variant string, fallback template.Locator, options ...ThemeOption) *Theme {
	t := &Theme{
		selector: selector,
		name:     name,
		variant:  variant,
		fallback: fallback,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// Err reports the selection error, if any. A theme that fails to select
// behaves as its fallback.
func (t *Theme) Err() error {
	t.load()
	return t.err
}

// Templates returns a copy of the merged theme templates.
func (t *Theme) Templates() map[string]string {
	t.load()
	out := make(map[string]string, len(t.templates))
	for k, v := range t.templates {
		out[k] = v
	}
	return out
}

// PathForType implements template.Locator.
func (t *Theme) PathForType(name string) (string, bool) {
	t.load()
	if p, ok := t.templates[name]; ok && p != "" {
		return p, true
	}
	if t.fallback != nil {
		return t.fallback.PathForType(name)
	}
	return "", false
}

// Exists implements template.Locator.
func (t *Theme) Exists(p string) bool {
	if t.fsys != nil || t.fallback == nil {
		if exists(t.fsys, p) {
			return true
		}
	}
	if t.fallback != nil {
		return t.fallback.Exists(p)
	}
	return false
}

func (t *Theme) load() {
	t.once.Do(func() {
		t.templates = map[string]string{}
		if t.selector == nil {
			return
		}

		selection, err := t.selector.Select(t.name, t.variant)
		if err != nil {
			t.err = fmt.Errorf("locator: select theme %q variant %q: %w", t.name, t.variant, err)
			return
		}
		if selection == nil || selection.Manifest == nil {
			return
		}

		for k, v := range selection.Manifest.Templates {
			t.templates[k] = v
		}
		if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
			for k, v := range variant.Templates {
				t.templates[k] = v
			}
		}
	})
}

// StaticSelector always selects the wrapped manifest.
type StaticSelector struct {
	Manifest *theme.Manifest
}

// Select implements theme.ThemeSelector.
func (s StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.Manifest == nil {
		return nil, fmt.Errorf("locator: no manifest for theme %q", name)
	}
	if name != "" && s.Manifest.Name != "" && name != s.Manifest.Name {
		return nil, fmt.Errorf("locator: theme %q not found", name)
	}
	return &theme.Selection{
		Theme:    s.Manifest.Name,
		Variant:  variant,
		Manifest: s.Manifest,
	}, nil
}
