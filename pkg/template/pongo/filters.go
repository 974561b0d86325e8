package pongo

import (
	"strings"
	"unicode/utf8"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-ui/pkg/safehtml"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("lowerfirst") {
		_ = pongo2.RegisterFilter("lowerfirst", filterLowerFirst)
	}
	if !pongo2.FilterExists("safehtml") {
		_ = pongo2.RegisterFilter("safehtml", filterSafeHTML)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

func filterLowerFirst(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	s := in.String()
	r, size := utf8.DecodeRuneInString(s)
	return pongo2.AsValue(strings.ToLower(string(r)) + s[size:]), nil
}

// filterSafeHTML runs the value through safehtml.Escape and marks the result
// safe, so elements and safehtml.HTML values are inserted without double
// escaping while plain strings are still escaped.
func filterSafeHTML(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(safehtml.Escape(in.Interface()).String()), nil
}
