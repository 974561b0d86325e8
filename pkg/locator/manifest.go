package locator

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Types map[string]string `json:"types" yaml:"types"`
}

// LoadManifest reads a document of the form {types: {name: path}} from fsys
// and returns a registry checking existence against the same filesystem.
// JSON is tried first, then YAML.
func LoadManifest(fsys fs.FS, name string, options ...Option) (*Registry, error) {
	if fsys == nil {
		return nil, fmt.Errorf("locator: manifest filesystem is nil")
	}

	data, err := fs.ReadFile(fsys, fsPath(name))
	if err != nil {
		return nil, fmt.Errorf("locator: read manifest %s: %w", name, err)
	}

	doc, err := parseManifest(data, name)
	if err != nil {
		return nil, err
	}

	r := NewRegistry(append([]Option{WithFS(fsys)}, options...)...)
	keys := make([]string, 0, len(doc.Types))
	for key := range doc.Types {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := r.Register(key, doc.Types[key]); err != nil {
			return nil, fmt.Errorf("locator: manifest %s: %w", name, err)
		}
	}
	return r, nil
}

func parseManifest(data []byte, source string) (manifestFile, error) {
	var doc manifestFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return manifestFile{}, fmt.Errorf("locator: manifest %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = manifestFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return manifestFile{}, fmt.Errorf("locator: parse manifest %s: invalid JSON or YAML", source)
}
