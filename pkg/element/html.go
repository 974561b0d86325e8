package element

import (
	"html"
	"reflect"

	"github.com/goliatone/go-ui/pkg/attributes"
	"github.com/goliatone/go-ui/pkg/href"
	"github.com/goliatone/go-ui/pkg/safehtml"
)

// selfClosingTags never get a closing tag or content.
var selfClosingTags = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"frame":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// IsSelfClosing reports whether tag is rendered as <tag />.
func IsSelfClosing(tag string) bool {
	return selfClosingTags[tag]
}

// ContentFunc supplies an element's content at render time.
type ContentFunc func() (any, error)

// PrepareFunc runs just before rendering and returns the element to render.
// Hooks that change state should work on e.Clone() to keep rendering free of
// side effects.
type PrepareFunc func(e *HTML) *HTML

// Option configures an HTML element.
type Option func(*HTML)

// WithContent sets static content.
func WithContent(content any) Option {
	return func(e *HTML) {
		e.content = content
	}
}

// WithContentFunc sets the content hook. It takes precedence over WithContent.
func WithContentFunc(fn ContentFunc) Option {
	return func(e *HTML) {
		e.contentFn = fn
	}
}

// WithPrepare sets the pre-render hook.
func WithPrepare(fn PrepareFunc) Option {
	return func(e *HTML) {
		e.prepare = fn
	}
}

// WithAttributes sets attributes in order.
func WithAttributes(attrs ...attributes.Attr) Option {
	return func(e *HTML) {
		for _, attr := range attrs {
			e.Set(attr.Key, attr.Value)
		}
	}
}

// WithFallback observes errors swallowed by ProduceSafeHTML and String.
func WithFallback(fn FallbackFunc) Option {
	return func(e *HTML) {
		e.onFallback = fn
	}
}

// attributeSet names the embedded attribute set so its Set method is
// promoted onto HTML instead of being shadowed by the field name.
type attributeSet = attributes.Set

// HTML is a single markup element. The embedded attribute set carries id,
// class and every other attribute.
type HTML struct {
	*attributeSet

	tag        string
	content    any
	contentFn  ContentFunc
	prepare    PrepareFunc
	onFallback FallbackFunc
}

// NewHTML creates an element for tag. An empty tag renders content only.
func NewHTML(tag string, options ...Option) *HTML {
	e := &HTML{attributeSet: attributes.New(), tag: tag}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Tag returns the tag name.
func (e *HTML) Tag() string { return e.tag }

// SetTag replaces the tag name.
func (e *HTML) SetTag(tag string) *HTML {
	e.tag = tag
	return e
}

// Content returns the static content.
func (e *HTML) Content() any { return e.content }

// SetContent replaces the static content.
func (e *HTML) SetContent(content any) *HTML {
	e.content = content
	return e
}

// SetFallback replaces the fallback observer.
func (e *HTML) SetFallback(fn FallbackFunc) *HTML {
	e.onFallback = fn
	return e
}

// Clone returns a copy with an independent attribute set. Content values and
// hooks are shared.
func (e *HTML) Clone() *HTML {
	cp := *e
	cp.attributeSet = e.attributeSet.Clone()
	return &cp
}

// Produce renders the element, returning any error from the href guard or
// the content hook. Nothing is emitted on error.
func (e *HTML) Produce() (safehtml.HTML, error) {
	if e == nil {
		return safehtml.HTML{}, nil
	}
	ele := e
	if e.prepare != nil {
		if prepared := e.prepare(e); prepared != nil {
			ele = prepared
		}
	}

	if v, ok := ele.Value("href"); ok && !v.IsFlag() {
		if err := href.Check(hrefText(v)); err != nil {
			return safehtml.HTML{}, err
		}
	}

	buf := make([]byte, 0, 64)
	buf = append(buf, '<')
	buf = append(buf, ele.tag...)
	buf = ele.AppendTo(buf)
	openLen := len(buf)

	content, err := ele.contentForRender()
	if err != nil {
		return safehtml.HTML{}, err
	}

	var inner safehtml.HTML
	if isEmptyContent(content) {
		if IsSelfClosing(ele.tag) {
			return safehtml.Wrap(string(append(buf, " />"...))), nil
		}
	} else {
		inner = safehtml.Escape(content)
	}

	if ele.tag == "" {
		return inner, nil
	}

	buf = append(buf[:openLen], '>')
	buf = append(buf, inner.String()...)
	buf = append(buf, "</"...)
	buf = append(buf, ele.tag...)
	buf = append(buf, '>')
	return safehtml.Wrap(string(buf)), nil
}

// Render returns the element markup or the first rendering error.
func (e *HTML) Render() (string, error) {
	out, err := e.Produce()
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// ProduceSafeHTML renders the element. Errors are reported to the fallback
// observer and rendered as their escaped message.
func (e *HTML) ProduceSafeHTML() safehtml.HTML {
	out, err := e.Produce()
	if err != nil {
		return fallback(err, e.onFallback)
	}
	return out
}

// String implements fmt.Stringer and never fails.
func (e *HTML) String() string {
	return e.ProduceSafeHTML().String()
}

func (e *HTML) contentForRender() (any, error) {
	if e.contentFn != nil {
		return e.contentFn()
	}
	return e.content, nil
}

func isEmptyContent(content any) bool {
	switch v := content.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	case safehtml.HTML:
		return v.Empty()
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case []safehtml.HTML:
		return len(v) == 0
	case safehtml.Producer:
		return isNilPointer(v)
	default:
		return false
	}
}

// hrefText returns the href as a browser would read it. Trusted markup is
// entity decoded first so encoded schemes such as javascript&#58; are caught.
func hrefText(v attributes.Value) string {
	if v.Kind() == attributes.KindSafe {
		return html.UnescapeString(v.String())
	}
	return v.String()
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
