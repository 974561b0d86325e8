package ui

import (
	"io/fs"

	"github.com/goliatone/go-ui/pkg/element"
	"github.com/goliatone/go-ui/pkg/locator"
	"github.com/goliatone/go-ui/pkg/safehtml"
	"github.com/goliatone/go-ui/pkg/template"
	"github.com/goliatone/go-ui/pkg/template/pongo"
)

// HTML aliases element.HTML so callers can build markup from the root package.
type HTML = element.HTML

// Templated aliases element.Templated.
type Templated = element.Templated

// Element aliases element.Element, the template-only element.
type Element = element.Element

// Identity aliases template.Identity.
type Identity = template.Identity

// SafeHTML aliases safehtml.HTML.
type SafeHTML = safehtml.HTML

// NewHTML exposes the element constructor from the top-level module.
func NewHTML(tag string, options ...element.Option) *HTML {
	return element.NewHTML(tag, options...)
}

// NewTemplated exposes the templated element constructor.
func NewTemplated(tag string, id Identity, options ...element.TemplateOption) *Templated {
	return element.NewTemplated(tag, id, options...)
}

// NewElement exposes the template-only element constructor.
func NewElement(id Identity, options ...element.TemplateOption) *Element {
	return element.New(id, options...)
}

// Configure loads the type manifest from fsys, builds a pongo2 loader over the
// same filesystem, and installs both as the defaults picked up by every
// element created afterwards. Elements already constructed keep their
// resolver.
func Configure(fsys fs.FS, manifest string, options ...pongo.Option) (*locator.Registry, *pongo.Loader, error) {
	registry, err := locator.LoadManifest(fsys, manifest)
	if err != nil {
		return nil, nil, err
	}

	loader, err := pongo.New(append([]pongo.Option{pongo.WithFS(fsys)}, options...)...)
	if err != nil {
		return nil, nil, err
	}

	template.SetDefaultLocator(registry)
	template.SetDefaultLoader(loader)
	return registry, loader, nil
}

// Escape renders any value as safe HTML, escaping everything that is not
// already trusted markup.
func Escape(value any) SafeHTML {
	return safehtml.Escape(value)
}

// Sanitize strips unsafe markup from user generated rich text.
func Sanitize(raw string) SafeHTML {
	return safehtml.Sanitize(raw)
}
