// Package href guards the href attribute against javascript: URIs, including
// forms disguised with whitespace, control characters or unicode spaces.
package href

import (
	"errors"
	"fmt"
)

// ErrJavascriptURI is matched by every rejection returned from Check.
var ErrJavascriptURI = errors.New("href: javascript URI rejected")

const scheme = "javascript:"

// SecurityError reports an href that normalises to a javascript: URI.
type SecurityError struct {
	Href string
}

func (e *SecurityError) Error() string {
	return "Attempting to render a tag with an 'href' attribute that begins with 'javascript:'. " +
		"This is either a serious security concern or a serious architecture concern. Seek urgent remedy."
}

// Is lets errors.Is match ErrJavascriptURI.
func (e *SecurityError) Is(target error) bool {
	return target == ErrJavascriptURI
}

// Check accepts or rejects an href value. Values are stringified first, so
// URI objects and other fmt.Stringer values are checked by their text form.
// Empty values are accepted.
func Check(value any) error {
	h := stringify(value)
	if h == "" {
		return nil
	}

	switch h[0] {
	case '#':
		return nil
	case '/':
		// "//host" is protocol relative and must take the slow path.
		if len(h) == 1 || h[1] != '/' {
			return nil
		}
	}

	if hasJavascriptScheme(h) {
		return &SecurityError{Href: h}
	}
	return nil
}

// Normalize strips every byte outside [a-z0-9/:] after lowercasing ASCII
// letters. Multi-byte characters are removed entirely.
func Normalize(h string) string {
	out := make([]byte, 0, len(h))
	for i := 0; i < len(h); i++ {
		if c, ok := keep(h[i]); ok {
			out = append(out, c)
		}
	}
	return string(out)
}

// hasJavascriptScheme matches the normalised prefix without building the full
// normalised string.
func hasJavascriptScheme(h string) bool {
	matched := 0
	for i := 0; i < len(h) && matched < len(scheme); i++ {
		c, ok := keep(h[i])
		if !ok {
			continue
		}
		if c != scheme[matched] {
			return false
		}
		matched++
	}
	return matched == len(scheme)
}

func keep(c byte) (byte, bool) {
	switch {
	case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '/', c == ':':
		return c, true
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A'), true
	default:
		return 0, false
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
