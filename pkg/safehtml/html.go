package safehtml

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// HTML is text that is safe to insert into markup without escaping.
type HTML struct {
	content string
}

// Producer is implemented by values that can render themselves as HTML.
// Implementations must never fail; errors are reported as escaped text.
type Producer interface {
	ProduceSafeHTML() HTML
}

// Wrap marks already safe content as HTML. Callers vouch for the content.
func Wrap(trusted string) HTML {
	return HTML{content: trusted}
}

// String returns the underlying markup.
func (h HTML) String() string {
	return h.content
}

// Empty reports whether the wrapped markup is the empty string.
func (h HTML) Empty() bool {
	return h.content == ""
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// EscapeString escapes raw text for inclusion in element content.
func EscapeString(raw string) HTML {
	return HTML{content: textEscaper.Replace(raw)}
}

// EscapeAttribute escapes raw text for use inside a double quoted attribute
// value. Whitespace control characters are encoded so they survive attribute
// normalisation.
func EscapeAttribute(raw string) string {
	return attrEscaper.Replace(raw)
}

// Escape converts an arbitrary value into HTML. HTML values and Producers pass
// through untouched, slices are escaped element by element and concatenated,
// everything else is stringified and escaped.
func Escape(value any) HTML {
	switch v := value.(type) {
	case nil:
		return HTML{}
	case HTML:
		return v
	case *HTML:
		if v == nil {
			return HTML{}
		}
		return *v
	case Producer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return HTML{}
		}
		return v.ProduceSafeHTML()
	case string:
		return EscapeString(v)
	case []byte:
		return EscapeString(string(v))
	case []HTML:
		var b strings.Builder
		for _, item := range v {
			b.WriteString(item.content)
		}
		return HTML{content: b.String()}
	case []string:
		var b strings.Builder
		for _, item := range v {
			b.WriteString(textEscaper.Replace(item))
		}
		return HTML{content: b.String()}
	case []any:
		var b strings.Builder
		for _, item := range v {
			b.WriteString(Escape(item).content)
		}
		return HTML{content: b.String()}
	case bool:
		if v {
			return HTML{content: "1"}
		}
		return HTML{}
	case int:
		return HTML{content: strconv.Itoa(v)}
	case int64:
		return HTML{content: strconv.FormatInt(v, 10)}
	case float64:
		return HTML{content: strconv.FormatFloat(v, 'f', -1, 64)}
	case error:
		return EscapeString(v.Error())
	case fmt.Stringer:
		return EscapeString(v.String())
	default:
		return EscapeString(fmt.Sprint(v))
	}
}

// Join concatenates HTML fragments with a separator that is escaped first.
func Join(parts []HTML, sep string) HTML {
	if len(parts) == 0 {
		return HTML{}
	}
	escapedSep := textEscaper.Replace(sep)
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteString(escapedSep)
		}
		b.WriteString(part.content)
	}
	return HTML{content: b.String()}
}
