// Package locator maps element type names to template source paths.
//
// A Registry is a static table, optionally loaded from a JSON or YAML
// manifest. A Theme layers go-theme manifest and variant templates over
// another locator so themes can override individual element templates.
// Both satisfy template.Locator.
package locator
