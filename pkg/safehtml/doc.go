// Package safehtml provides the HTML type used across go-ui to mark text that
// needs no further escaping before it is inserted into markup.
//
// Values are only created through explicit constructors:
//
//	safehtml.EscapeString("<b>")    // &lt;b&gt;
//	safehtml.Wrap("<b>trusted</b>") // inserted as-is
//	safehtml.Sanitize(userMarkup)   // bluemonday UGC policy
//
// Plain strings are never promoted implicitly.
package safehtml
