package deckgen

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/catalog.yaml
var defaultCatalogYAML []byte

// Catalog holds the enumerated options a caller may pick from: models,
// themes, fonts and numeric limits. It is plain configuration; the form and
// the advisory validation rules read it, nothing else enforces it.
//
// Library users can replace the embedded catalog by calling
// LoadCatalogFromFile or ParseCatalog and passing the result around
// explicitly.
type Catalog struct {
	Version      string        `yaml:"version"`
	LastUpdated  string        `yaml:"last_updated"`
	DefaultModel string        `yaml:"default_model"`
	Models       []ModelOption `yaml:"models"`
	DefaultTheme string        `yaml:"default_theme"`
	Themes       []Theme       `yaml:"themes"`
	Fonts        []string      `yaml:"fonts"`
	Limits       CatalogLimits `yaml:"limits"`
}

// ModelOption is one selectable model.
type ModelOption struct {
	ID       string     `yaml:"id"`
	Provider ProviderID `yaml:"provider"`
	Label    string     `yaml:"label"`
}

// Theme maps a display name to the accent color used for slide text.
type Theme struct {
	Name  string `yaml:"name"`
	Color RGB    `yaml:"color"`
}

// Range is an inclusive integer range with a default value.
type Range struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Default int `yaml:"default"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// CatalogLimits bounds the numeric form inputs.
type CatalogLimits struct {
	SlideCount  Range `yaml:"slide_count"`
	BulletCount Range `yaml:"bullet_count"`
	FontSize    Range `yaml:"font_size"`
}

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog embedded in the binary.
// It panics if the embedded YAML is malformed, which is a build defect.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = ParseCatalog(defaultCatalogYAML)
	})
	if defaultCatalogErr != nil {
		panic(fmt.Sprintf("deckgen: embedded catalog: %v", defaultCatalogErr))
	}
	return defaultCatalog
}

// ParseCatalog decodes and checks a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalogFromFile loads a catalog from a YAML file with the same
// structure as the embedded one.
func LoadCatalogFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

func (c *Catalog) check() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("catalog has no models")
	}
	if len(c.Themes) == 0 {
		return fmt.Errorf("catalog has no themes")
	}
	if len(c.Fonts) == 0 {
		return fmt.Errorf("catalog has no fonts")
	}
	for name, r := range map[string]Range{
		"slide_count":  c.Limits.SlideCount,
		"bullet_count": c.Limits.BulletCount,
		"font_size":    c.Limits.FontSize,
	} {
		if r.Min > r.Max || !r.Contains(r.Default) {
			return fmt.Errorf("catalog limit %s is inconsistent: %+v", name, r)
		}
	}
	if c.DefaultModel == "" {
		c.DefaultModel = c.Models[0].ID
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = c.Themes[0].Name
	}
	return nil
}

// Model returns the model option with the given id.
func (c *Catalog) Model(id string) (ModelOption, bool) {
	for _, m := range c.Models {
		if m.ID == id {
			return m, true
		}
	}
	return ModelOption{}, false
}

// Theme returns the theme with the given name.
func (c *Catalog) Theme(name string) (Theme, bool) {
	for _, t := range c.Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// HasFont reports whether font is one of the listed font families.
func (c *Catalog) HasFont(font string) bool {
	for _, f := range c.Fonts {
		if f == font {
			return true
		}
	}
	return false
}
