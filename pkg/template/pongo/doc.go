// Package pongo runs resolved templates with pongo2.
//
// A Loader satisfies template.Loader. The element being rendered is exposed to
// the template under the owner key ("element" by default):
//
//	<strong>{{ element.Title }}</strong>
//	{{ element.Badge|safehtml }}
//
// Errors raised by pongo2 are converted into *Error, which reports the failing
// line so template.ExecutionError can annotate it.
package pongo
