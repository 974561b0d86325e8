package element

import (
	"github.com/goliatone/go-ui/pkg/safehtml"
)

// Renderable is implemented by everything that renders to markup.
type Renderable interface {
	Render() (string, error)
}

// FallbackFunc observes errors swallowed by ProduceSafeHTML.
type FallbackFunc func(err error)

var (
	_ Renderable        = (*HTML)(nil)
	_ Renderable        = (*Templated)(nil)
	_ Renderable        = (*Element)(nil)
	_ safehtml.Producer = (*HTML)(nil)
	_ safehtml.Producer = (*Templated)(nil)
	_ safehtml.Producer = (*Element)(nil)
)

// fallback converts err into escaped HTML after reporting it.
func fallback(err error, observe FallbackFunc) safehtml.HTML {
	if observe != nil {
		observe(err)
	}
	return safehtml.EscapeString(err.Error())
}
