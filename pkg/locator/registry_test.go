package locator_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ui/pkg/locator"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	files := fstest.MapFS{
		"widgets/card.tpl": {Data: []byte("card")},
	}
	r := locator.NewRegistry(locator.WithFS(files))
	r.MustRegister("acme.Card", "widgets/card.go")
	r.MustRegister("acme.Alert", "widgets/alert.go")

	got, ok := r.PathForType("acme.Card")
	if !ok || got != "widgets/card.go" {
		t.Fatalf("PathForType = %q, %v", got, ok)
	}
	if _, ok := r.PathForType("acme.Missing"); ok {
		t.Fatalf("expected missing type to report false")
	}

	if !r.Exists("widgets/card.tpl") {
		t.Fatalf("expected widgets/card.tpl to exist")
	}
	if !r.Exists("/widgets/card.tpl") {
		t.Fatalf("expected rooted path to resolve against fs root")
	}
	if r.Exists("widgets/alert.tpl") {
		t.Fatalf("expected widgets/alert.tpl to be missing")
	}
	if r.Exists("widgets") {
		t.Fatalf("directories are not templates")
	}

	if diff := cmp.Diff([]string{"acme.Alert", "acme.Card"}, r.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsInvalidEntries(t *testing.T) {
	r := locator.NewRegistry()
	if err := r.Register("", "a.go"); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if err := r.Register("acme.Card", " "); err == nil {
		t.Fatalf("expected empty path to fail")
	}
	if err := r.Register("acme.Card", "card.go"); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := r.Register("acme.Card", "other.go")
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestMustRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	locator.NewRegistry().MustRegister("", "")
}

func TestLoadManifest(t *testing.T) {
	files := fstest.MapFS{
		"ui.json":           {Data: []byte(`{"types": {"acme.Card": "widgets/card.go"}}`)},
		"ui.yaml":           {Data: []byte("types:\n  acme.Card: widgets/card.go\n  acme.Alert: widgets/alert.go\n")},
		"empty.yaml":        {Data: []byte("  \n")},
		"broken.yaml":       {Data: []byte("types: [\n")},
		"widgets/card.tpl":  {Data: []byte("card")},
		"widgets/alert.tpl": {Data: []byte("alert")},
	}

	tests := []struct {
		name  string
		file  string
		names []string
	}{
		{name: "json", file: "ui.json", names: []string{"acme.Card"}},
		{name: "yaml", file: "ui.yaml", names: []string{"acme.Alert", "acme.Card"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := locator.LoadManifest(files, tt.file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if diff := cmp.Diff(tt.names, r.Names()); diff != "" {
				t.Fatalf("names mismatch (-want +got):\n%s", diff)
			}
			if !r.Exists("widgets/card.tpl") {
				t.Fatalf("manifest registry should check the manifest filesystem")
			}
		})
	}

	for _, file := range []string{"empty.yaml", "broken.yaml", "missing.yaml"} {
		if _, err := locator.LoadManifest(files, file); err == nil {
			t.Fatalf("expected %s to fail", file)
		}
	}
}
