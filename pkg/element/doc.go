// Package element renders typed elements to safe HTML.
//
// HTML is a tag plus an ordered attribute set and optional content:
//
//	link := element.NewHTML("a", element.WithContent("Docs"))
//	link.Set("href", "/docs").AddClass("nav")
//	link.String() // <a href="/docs" class="nav">Docs</a>
//
// Templated is an HTML element whose content comes from a template resolved
// for its type, and Element is a template-only element with no wrapping tag.
//
// Render returns errors; ProduceSafeHTML and String never fail and instead
// emit the escaped error message. That fallback is the only place errors are
// swallowed, and it can be observed with WithFallback.
package element
