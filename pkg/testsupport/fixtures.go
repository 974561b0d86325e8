package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ui/pkg/locator"
	"github.com/goliatone/go-ui/pkg/template"
	"github.com/goliatone/go-ui/pkg/template/pongo"
)

// Templates builds an in-memory template tree from path/content pairs.
func Templates(files map[string]string) fstest.MapFS {
	out := make(fstest.MapFS, len(files))
	for name, body := range files {
		out[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return out
}

// Fixture wires an in-memory template tree to a locator registry and a
// pongo2 loader.
type Fixture struct {
	FS       fstest.MapFS
	Registry *locator.Registry
	Loader   *pongo.Loader
}

// NewFixture registers types (name to source path) against files. Helpers
// fail the test on setup errors to keep element tests concise.
func NewFixture(t *testing.T, files map[string]string, types map[string]string, opts ...pongo.Option) *Fixture {
	t.Helper()

	fsys := Templates(files)
	registry := locator.NewRegistry(locator.WithFS(fsys))
	for name, source := range types {
		if err := registry.Register(name, source); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	loader, err := pongo.New(append([]pongo.Option{pongo.WithFS(fsys)}, opts...)...)
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	return &Fixture{FS: fsys, Registry: registry, Loader: loader}
}

// ResolverOptions returns options binding a resolver to the fixture.
func (f *Fixture) ResolverOptions() []template.Option {
	return []template.Option{
		template.WithLocator(f.Registry),
		template.WithLoader(f.Loader),
	}
}

// Resolver returns a fresh resolver bound to the fixture.
func (f *Fixture) Resolver() *template.Resolver {
	return template.NewResolver(f.ResolverOptions()...)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
