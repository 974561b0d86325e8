package template

import (
	"strings"

	"golang.org/x/text/language"
)

// LocaleVariants builds the extension variants for locale, most specific
// first, ending with the plain extension:
//
//	LocaleVariants("de-CH", "tpl") // ["de-CH.tpl", "de.tpl", "tpl"]
//
// Unparseable or empty locales yield just the extension.
func LocaleVariants(locale, ext string) []string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return []string{ext}
	}

	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return []string{ext}
	}

	out := make([]string, 0, 3)
	seen := make(map[string]struct{}, 3)
	add := func(prefix string) {
		if prefix == "" || prefix == "und" {
			return
		}
		variant := prefix + "." + ext
		if _, ok := seen[variant]; ok {
			return
		}
		seen[variant] = struct{}{}
		out = append(out, variant)
	}

	add(tag.String())
	if base, confidence := tag.Base(); confidence != language.No {
		add(base.String())
	}
	return append(out, ext)
}
