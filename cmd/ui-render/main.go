package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ui/internal/config"
	"github.com/goliatone/go-ui/internal/logging"
	"github.com/goliatone/go-ui/pkg/element"
	"github.com/goliatone/go-ui/pkg/locator"
	"github.com/goliatone/go-ui/pkg/template"
	"github.com/goliatone/go-ui/pkg/template/pongo"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, surveyPicker{}); err != nil {
		log.Fatalf("ui-render: %v", err)
	}
}

// view is the owner exposed to templates as `element`.
type view struct {
	Type string
	Data map[string]any
}

type options struct {
	configPath  string
	output      string
	interactive bool
	safe        bool
}

func run(args []string, stdout, stderr io.Writer, pick picker) error {
	fset := flag.NewFlagSet("ui-render", flag.ContinueOnError)
	fset.SetOutput(stderr)

	var opts options
	overrides := config.Config{}
	fset.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fset.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fset.BoolVar(&opts.interactive, "interactive", false, "pick the element type from the manifest")
	fset.BoolVar(&opts.safe, "safe", false, "emit the escaped error instead of failing")
	fset.StringVar(&overrides.Templates, "templates", "", "template root directory")
	fset.StringVar(&overrides.Manifest, "manifest", "", "type manifest relative to the template root")
	fset.StringVar(&overrides.Element, "element", "", "element type name to render")
	fset.StringVar(&overrides.Tag, "tag", "", "wrap the template output in this tag")
	fset.StringVar(&overrides.Locale, "locale", "", "locale used to pick template variants, e.g. de-CH")
	fset.StringVar(&overrides.Extension, "extension", "", "template extension")
	fset.StringVar(&overrides.Theme.Name, "theme", "", "theme name")
	fset.StringVar(&overrides.Theme.Variant, "variant", "", "theme variant")
	fset.StringVar(&overrides.Log.Format, "log-format", "", "log format: text or json")
	fset.StringVar(&overrides.Log.Level, "log-level", "", "log level: debug, info, warn or error")
	if err := fset.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	merge(cfg, overrides)

	logger := logging.NewLogger(cfg.Log.Format, cfg.Log.Level, stderr)

	fsys := os.DirFS(cfg.Templates)
	registry, err := locator.LoadManifest(fsys, cfg.Manifest)
	if err != nil {
		return err
	}

	var loc template.Locator = registry
	if cfg.Theme.Enabled() {
		loc = locator.NewTheme(
			locator.StaticSelector{Manifest: themeManifest(cfg.Theme)},
			cfg.Theme.Name,
			cfg.Theme.Variant,
			registry,
			locator.WithThemeFS(fsys),
		)
	}

	loader, err := pongo.New(pongo.WithFS(fsys), pongo.WithGlobalData(cfg.Data))
	if err != nil {
		return err
	}

	name := cfg.Element
	if opts.interactive {
		name, err = pick.Pick("Element type", registry.Names(), name)
		if err != nil {
			return err
		}
	}
	if name == "" {
		return errors.New("element type is required (use -element or -interactive)")
	}

	logger = logging.WithElement(logger, name)
	logger.Debug("rendering", "templates", cfg.Templates, "locale", cfg.Locale, "tag", cfg.Tag)

	out, err := render(cfg, name, loc, loader, logger, opts.safe)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("element written", "output", opts.output)
		return nil
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func render(cfg *config.Config, name string, loc template.Locator, loader template.Loader, logger *slog.Logger, safe bool) (string, error) {
	variants := []string{cfg.Extension}
	if cfg.Locale != "" {
		variants = template.LocaleVariants(cfg.Locale, cfg.Extension)
	}

	owner := &view{Type: name, Data: cfg.Data}
	id := template.Identity{Name: name}
	tplOpts := []element.TemplateOption{
		element.WithResolverOptions(template.WithLocator(loc), template.WithLoader(loader)),
		element.WithVariants(variants...),
		element.WithOwner(owner),
		element.OnFallback(logging.RenderFallback(logger)),
	}

	var ele interface {
		element.Renderable
		String() string
	}
	if cfg.Tag != "" {
		ele = element.NewTemplated(cfg.Tag, id, tplOpts...)
	} else {
		ele = element.New(id, tplOpts...)
	}

	if safe {
		return ele.String(), nil
	}
	return ele.Render()
}

func merge(cfg *config.Config, overrides config.Config) {
	setString(&cfg.Templates, overrides.Templates)
	setString(&cfg.Manifest, overrides.Manifest)
	setString(&cfg.Element, overrides.Element)
	setString(&cfg.Tag, overrides.Tag)
	setString(&cfg.Locale, overrides.Locale)
	setString(&cfg.Extension, overrides.Extension)
	setString(&cfg.Theme.Name, overrides.Theme.Name)
	setString(&cfg.Theme.Variant, overrides.Theme.Variant)
	setString(&cfg.Log.Format, overrides.Log.Format)
	setString(&cfg.Log.Level, overrides.Log.Level)
}

func setString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func themeManifest(cfg config.Theme) *theme.Manifest {
	manifest := &theme.Manifest{
		Name:      cfg.Name,
		Templates: cfg.Templates,
		Variants:  make(map[string]theme.Variant, len(cfg.Variants)),
	}
	for name, templates := range cfg.Variants {
		manifest.Variants[name] = theme.Variant{Templates: templates}
	}
	return manifest
}
