package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-ui/pkg/template"
)

type stubPicker struct {
	choice  string
	options []string
}

func (p *stubPicker) Pick(_ string, options []string, _ string) (string, error) {
	p.options = options
	return p.choice, nil
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func fixtureTree(t *testing.T) string {
	return writeTree(t, map[string]string{
		"ui.yaml":                   "types:\n  widgets.Card: widgets/card.go\n  widgets.Alert: widgets/alert.go\n",
		"widgets/card.tpl":          "<p>{{ element.Data.title }}</p>",
		"widgets/card.de.tpl":       "<p>Hallo {{ title }}</p>",
		"widgets/alert.tpl":         "<em>{{ element.Type }}</em>",
		"themes/acme/dark/card.tpl": "<p class=\"dark\">{{ title }}</p>",
		"config/ui-render.yaml":     "",
	})
}

func TestRunRendersElement(t *testing.T) {
	dir := fixtureTree(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-templates", dir, "-element", "widgets.Card", "-tag", "div"}, &stdout, &stderr, &stubPicker{})
	if err != nil {
		t.Fatalf("run: %v (stderr %s)", err, stderr.String())
	}
	if got := stdout.String(); got != "<div><p></p></div>\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunWithConfigLocaleAndTheme(t *testing.T) {
	dir := fixtureTree(t)
	cfgPath := filepath.Join(dir, "config", "ui-render.yaml")
	content := "templates: " + dir + "\n" +
		"element: widgets.Card\n" +
		"data:\n  title: World & Co\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-config", cfgPath, "-locale", "de-CH"}, &stdout, &stderr, &stubPicker{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != "<p>Hallo World &amp; Co</p>\n" {
		t.Fatalf("unexpected locale output %q", got)
	}

	themed := content + "theme:\n  name: acme\n  variants:\n    dark:\n      widgets.Card: themes/acme/dark/card.go\n"
	if err := os.WriteFile(cfgPath, []byte(themed), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout.Reset()
	if err := run([]string{"-config", cfgPath, "-variant", "dark"}, &stdout, &stderr, &stubPicker{}); err != nil {
		t.Fatalf("run themed: %v", err)
	}
	if got := stdout.String(); got != "<p class=\"dark\">World &amp; Co</p>\n" {
		t.Fatalf("unexpected themed output %q", got)
	}
}

func TestRunInteractivePicksFromManifest(t *testing.T) {
	dir := fixtureTree(t)
	pick := &stubPicker{choice: "widgets.Alert"}

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-templates", dir, "-interactive"}, &stdout, &stderr, pick); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Join(pick.options, ",") != "widgets.Alert,widgets.Card" {
		t.Fatalf("unexpected options %v", pick.options)
	}
	if got := stdout.String(); got != "<em>widgets.Alert</em>\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunMissingTemplate(t *testing.T) {
	dir := fixtureTree(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-templates", dir, "-element", "widgets.Card", "-extension", "missing"}, &stdout, &stderr, &stubPicker{})
	if !errors.Is(err, template.ErrTemplateNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	stdout.Reset()
	err = run([]string{"-templates", dir, "-element", "widgets.Card", "-extension", "missing", "-safe"}, &stdout, &stderr, &stubPicker{})
	if err != nil {
		t.Fatalf("safe run: %v", err)
	}
	if got := stdout.String(); got != "no template file found for `Card`\n" {
		t.Fatalf("unexpected safe output %q", got)
	}
	if !strings.Contains(stderr.String(), "render failed") {
		t.Fatalf("expected fallback warning in %q", stderr.String())
	}
}

func TestRunRequiresElement(t *testing.T) {
	dir := fixtureTree(t)
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-templates", dir}, &stdout, &stderr, &stubPicker{}); err == nil {
		t.Fatalf("expected missing element error")
	}
}
