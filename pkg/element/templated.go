package element

import (
	"github.com/goliatone/go-ui/pkg/safehtml"
	"github.com/goliatone/go-ui/pkg/template"
)

// DefaultVariants is used when no variants are configured.
var DefaultVariants = []string{"tpl"}

// TemplateOption configures the template binding of Templated and Element.
type TemplateOption func(*binding)

// WithVariants sets the ordered candidate suffixes, e.g. "de.tpl", "tpl".
func WithVariants(variants ...string) TemplateOption {
	return func(b *binding) {
		b.variants = append([]string(nil), variants...)
	}
}

// WithLocale sets variants derived from a BCP 47 locale tag.
func WithLocale(locale, ext string) TemplateOption {
	return func(b *binding) {
		b.variants = template.LocaleVariants(locale, ext)
	}
}

// WithFallbackIdentities appends identities consulted after the primary one,
// typically the types the element extends.
func WithFallbackIdentities(ids ...template.Identity) TemplateOption {
	return func(b *binding) {
		b.fallbacks = append(b.fallbacks, ids...)
	}
}

// WithOwner sets the value exposed to the template. Types embedding an
// element pass themselves here.
func WithOwner(owner any) TemplateOption {
	return func(b *binding) {
		b.owner = owner
	}
}

// WithResolver uses an existing resolver instead of building one.
func WithResolver(r *template.Resolver) TemplateOption {
	return func(b *binding) {
		b.resolver = r
	}
}

// WithResolverOptions configures the resolver built for the element.
func WithResolverOptions(opts ...template.Option) TemplateOption {
	return func(b *binding) {
		b.resolverOpts = append(b.resolverOpts, opts...)
	}
}

// OnFallback observes errors swallowed by ProduceSafeHTML and String.
func OnFallback(fn FallbackFunc) TemplateOption {
	return func(b *binding) {
		b.onFallback = fn
	}
}

// binding ties an identity to the resolver that renders it.
type binding struct {
	resolver     *template.Resolver
	resolverOpts []template.Option
	identity     template.Identity
	fallbacks    []template.Identity
	variants     []string
	owner        any
	onFallback   FallbackFunc
}

func newBinding(id template.Identity, options []TemplateOption) *binding {
	b := &binding{identity: id}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if len(b.variants) == 0 {
		b.variants = append([]string(nil), DefaultVariants...)
	}
	if b.resolver == nil {
		b.resolver = template.NewResolver(b.resolverOpts...)
	}
	return b
}

func (b *binding) identities() []template.Identity {
	ids := make([]template.Identity, 0, 1+len(b.fallbacks))
	ids = append(ids, b.identity)
	return append(ids, b.fallbacks...)
}

func (b *binding) run(self any) (string, error) {
	owner := b.owner
	if owner == nil {
		owner = self
	}
	return b.resolver.Run(owner, b.identities(), b.variants)
}

// Identity returns the primary template identity.
func (b *binding) Identity() template.Identity { return b.identity }

// Variants returns a copy of the configured variants.
func (b *binding) Variants() []string {
	return append([]string(nil), b.variants...)
}

// SetVariants replaces the variants. It has no effect once a template has
// been resolved.
func (b *binding) SetVariants(variants ...string) {
	if len(variants) == 0 {
		variants = DefaultVariants
	}
	b.variants = append([]string(nil), variants...)
}

// TemplatePath reports the resolved template path, if any.
func (b *binding) TemplatePath() (string, bool) {
	return b.resolver.Path()
}

// Templated is an HTML element whose content is produced by a template
// resolved for its identity.
type Templated struct {
	*HTML
	*binding
}

// NewTemplated creates a templated element wrapped in tag. Attributes and
// other HTML behavior are configured on the returned value.
func NewTemplated(tag string, id template.Identity, options ...TemplateOption) *Templated {
	t := &Templated{binding: newBinding(id, options)}
	t.HTML = NewHTML(tag,
		WithContentFunc(t.templateContent),
		WithFallback(t.binding.onFallback),
	)
	return t
}

// Render returns the element markup or the first rendering error.
func (t *Templated) Render() (string, error) {
	if t == nil {
		return "", nil
	}
	return t.HTML.Render()
}

// ProduceSafeHTML renders the element, falling back to the escaped error
// message.
func (t *Templated) ProduceSafeHTML() safehtml.HTML {
	if t == nil {
		return safehtml.HTML{}
	}
	return t.HTML.ProduceSafeHTML()
}

// String implements fmt.Stringer and never fails.
func (t *Templated) String() string {
	return t.ProduceSafeHTML().String()
}

func (t *Templated) templateContent() (any, error) {
	out, err := t.run(t)
	if err != nil {
		return nil, err
	}
	return safehtml.Wrap(out), nil
}

// Element is a template-only element. Its markup is exactly the template
// output.
type Element struct {
	*binding
}

// New creates a template-only element for id.
func New(id template.Identity, options ...TemplateOption) *Element {
	return &Element{binding: newBinding(id, options)}
}

// Render executes the resolved template.
func (e *Element) Render() (string, error) {
	if e == nil {
		return "", nil
	}
	return e.run(e)
}

// ProduceSafeHTML renders the element, falling back to the escaped error
// message.
func (e *Element) ProduceSafeHTML() safehtml.HTML {
	if e == nil {
		return safehtml.HTML{}
	}
	out, err := e.Render()
	if err != nil {
		return fallback(err, e.onFallback)
	}
	return safehtml.Wrap(out)
}

// String implements fmt.Stringer and never fails.
func (e *Element) String() string {
	return e.ProduceSafeHTML().String()
}
