// Package attributes implements the ordered attribute mapping carried by every
// HTML element, including the class token list.
//
// Values are stored as a closed variant (see Kind) so serialization never has
// to guess at runtime types:
//
//	set := attributes.New()
//	set.Set("href", "/docs").Set("hidden", nil).Set("tabindex", 3)
//	set.AddClass("btn", []string{"btn-primary", "large"})
//	set.String() // ` href="/docs" hidden tabindex="3" class="btn btn-primary large"`
package attributes
