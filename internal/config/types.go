package config

// Config is the ui-render configuration file. Template, manifest and theme
// paths are relative to Templates.
type Config struct {
	Templates string         `yaml:"templates"`
	Manifest  string         `yaml:"manifest"`
	Element   string         `yaml:"element"`
	Tag       string         `yaml:"tag"`
	Locale    string         `yaml:"locale"`
	Extension string         `yaml:"extension"`
	Theme     Theme          `yaml:"theme"`
	Data      map[string]any `yaml:"data"`
	Log       Log            `yaml:"log"`
}

// Theme overrides element templates by theme and variant.
type Theme struct {
	Name      string                       `yaml:"name"`
	Variant   string                       `yaml:"variant"`
	Templates map[string]string            `yaml:"templates"`
	Variants  map[string]map[string]string `yaml:"variants"`
}

// Enabled reports whether any theme template is configured.
func (t Theme) Enabled() bool {
	return len(t.Templates) > 0 || len(t.Variants) > 0
}

// Log configures the CLI logger.
type Log struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}
