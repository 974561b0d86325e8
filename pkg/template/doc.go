// Package template resolves an element's companion template file and runs it.
//
// Resolution maps a type Identity to a source path (through a Locator, or the
// Identity's own Source as a fallback), then tries each extension variant in
// order by swapping the source file's extension:
//
//	widgets/card.go + ["de.tpl", "tpl"] -> widgets/card.de.tpl, widgets/card.tpl
//
// The first existing candidate wins and is cached for the lifetime of the
// Resolver. Variant order is the localisation mechanism; see LocaleVariants.
//
// Execution is delegated to a Loader. Failures are wrapped in ExecutionError
// carrying the template's base name and, when the loader reports one, the line.
package template
