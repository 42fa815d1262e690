package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bundle holds every loaded locale, keyed by language code. Bundles are
// read once at startup and never mutated afterwards.
type Bundle struct {
	locales  map[string]*Locale
	fallback string
}

// Load reads all *.yml/*.yaml files from dir. fallback is the code
// served when a requested locale is missing; it must be present in dir.
func Load(dir, fallback string) (*Bundle, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	yamlFiles, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	files = append(files, yamlFiles...)

	bundle := &Bundle{
		locales:  make(map[string]*Locale, len(files)),
		fallback: fallback,
	}

	for _, file := range files {
		locale, err := loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}
		bundle.locales[locale.Code] = locale
	}

	if _, ok := bundle.locales[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %q not found in %s", fallback, dir)
	}

	return bundle, nil
}

func loadFile(path string) (*Locale, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var locale Locale
	if err := yaml.Unmarshal(data, &locale); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	name := filepath.Base(path)
	locale.Code = strings.TrimSuffix(strings.TrimSuffix(name, ".yml"), ".yaml")

	if locale.Events.Untitled == "" {
		return nil, fmt.Errorf("events.untitled is required")
	}

	return &locale, nil
}

// Get returns the locale for code, falling back to the bundle default.
func (b *Bundle) Get(code string) *Locale {
	if locale, ok := b.locales[code]; ok {
		return locale
	}
	return b.locales[b.fallback]
}

func (b *Bundle) Codes() []string {
	codes := make([]string, 0, len(b.locales))
	for code := range b.locales {
		codes = append(codes, code)
	}
	return codes
}
