package locator_test

import (
	"errors"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ui/pkg/locator"
)

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Templates: map[string]string{
			"widgets.Card":  "themes/acme/card.go",
			"widgets.Alert": "themes/acme/alert.go",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Templates: map[string]string{
					"widgets.Card": "themes/acme/dark/card.go",
				},
			},
		},
	}
}

func TestThemeVariantPrecedence(t *testing.T) {
	fallback := locator.NewRegistry()
	fallback.MustRegister("widgets.Card", "widgets/card.go")
	fallback.MustRegister("widgets.Badge", "widgets/badge.go")

	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: acmeManifest(),
	}}
	loc := locator.NewTheme(selector, "acme", "dark", fallback)

	tests := map[string]string{
		"widgets.Card":  "themes/acme/dark/card.go",
		"widgets.Alert": "themes/acme/alert.go",
		"widgets.Badge": "widgets/badge.go",
	}
	for name, want := range tests {
		got, ok := loc.PathForType(name)
		if !ok || got != want {
			t.Fatalf("PathForType(%q) = %q, %v; want %q", name, got, ok, want)
		}
	}
	if _, ok := loc.PathForType("widgets.Missing"); ok {
		t.Fatalf("expected unknown type to be missing")
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0] != (selectorCall{name: "acme", variant: "dark"}) {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}
}

func TestThemeSelectionErrorFallsBack(t *testing.T) {
	fallback := locator.NewRegistry()
	fallback.MustRegister("widgets.Card", "widgets/card.go")

	selector := &stubThemeSelector{err: errors.New("boom")}
	loc := locator.NewTheme(selector, "acme", "", fallback)

	got, ok := loc.PathForType("widgets.Card")
	if !ok || got != "widgets/card.go" {
		t.Fatalf("PathForType = %q, %v", got, ok)
	}
	if err := loc.Err(); err == nil || !errors.Is(err, selector.err) {
		t.Fatalf("expected wrapped selection error, got %v", err)
	}
}

func TestThemeExistsChecksThemeFSThenFallback(t *testing.T) {
	themeFiles := fstest.MapFS{
		"themes/acme/dark/card.tpl": {Data: []byte("dark")},
	}
	baseFiles := fstest.MapFS{
		"widgets/badge.tpl": {Data: []byte("badge")},
	}

	fallback := locator.NewRegistry(locator.WithFS(baseFiles))
	loc := locator.NewTheme(locator.StaticSelector{Manifest: acmeManifest()}, "acme", "dark", fallback, locator.WithThemeFS(themeFiles))

	if !loc.Exists("themes/acme/dark/card.tpl") {
		t.Fatalf("expected themed template to exist")
	}
	if !loc.Exists("widgets/badge.tpl") {
		t.Fatalf("expected fallback template to exist")
	}
	if loc.Exists("widgets/card.tpl") {
		t.Fatalf("expected widgets/card.tpl to be missing")
	}
	if got := loc.Templates()["widgets.Card"]; got != "themes/acme/dark/card.go" {
		t.Fatalf("unexpected merged template: %q", got)
	}
}

func TestStaticSelector(t *testing.T) {
	sel := locator.StaticSelector{Manifest: acmeManifest()}

	got, err := sel.Select("acme", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got.Theme != "acme" || got.Variant != "dark" {
		t.Fatalf("unexpected selection: %+v", got)
	}
	if _, err := sel.Select("other", ""); err == nil {
		t.Fatalf("expected unknown theme to fail")
	}
	if _, err := (locator.StaticSelector{}).Select("acme", ""); err == nil {
		t.Fatalf("expected missing manifest to fail")
	}
}
