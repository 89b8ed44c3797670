// Package catalog holds the lookup tables that translate the image
// libraries' human-entered folder names and file names into canonical
// catalog values. The tables are plain data, loaded from yaml and passed
// into the pipeline so tests can substitute their own.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arvetile/catalog-backend/internal/platform/logger"
)

const mappingEnv = "CATALOG_MAPPING_YAML"

//go:embed mapping.yaml
var mappingFS embed.FS

// SurfaceRule maps a case-insensitive substring of a surface folder name to
// a canonical surface value. Rules are evaluated in order, first hit wins.
type SurfaceRule struct {
	Contains string `yaml:"contains"`
	Value    string `yaml:"value"`
}

// ColorRule maps a keyword of a normalized product name to a color value.
// Rules are evaluated in order, first hit wins.
type ColorRule struct {
	Keyword string `yaml:"keyword"`
	Value   string `yaml:"value"`
}

// Mapping is the full lookup configuration for one deployment of the
// reconciliation pipeline.
type Mapping struct {
	// Dimensions maps every observed raw dimension-folder spelling
	// ("30 30", "60X120", "100 100") to its canonical code.
	Dimensions map[string]string `yaml:"dimensions"`

	Surfaces       []SurfaceRule `yaml:"surfaces"`
	SurfaceDefault string        `yaml:"surface_default"`

	Colors       []ColorRule `yaml:"colors"`
	ColorDefault string      `yaml:"color_default"`

	// FallbackCap bounds the folder-level fallback match tier.
	FallbackCap int `yaml:"fallback_cap"`
	// ListCap bounds the length of persisted image lists.
	ListCap int `yaml:"list_cap"`

	canonical map[string]bool
}

// Load returns the mapping from the CATALOG_MAPPING_YAML file when set,
// falling back to the embedded default document.
func Load(log *logger.Logger) (*Mapping, error) {
	raw, source, err := readMapping()
	if err != nil {
		return nil, err
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse mapping %s: %w", source, err)
	}
	if log != nil {
		log.Debug("mapping loaded", "source", source,
			"dimension_spellings", len(m.Dimensions), "color_rules", len(m.Colors))
	}
	return m, nil
}

func readMapping() ([]byte, string, error) {
	if path := os.Getenv(mappingEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
		return raw, path, nil
	}
	raw, err := mappingFS.ReadFile("mapping.yaml")
	if err != nil {
		return nil, "", fmt.Errorf("read embedded mapping: %w", err)
	}
	return raw, "embedded", nil
}

// Parse decodes a yaml mapping document and indexes the canonical set.
func Parse(raw []byte) (*Mapping, error) {
	var m Mapping
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if len(m.Dimensions) == 0 {
		return nil, fmt.Errorf("mapping has no dimension table")
	}
	if m.SurfaceDefault == "" {
		m.SurfaceDefault = "Matt"
	}
	if m.ColorDefault == "" {
		m.ColorDefault = "Natural"
	}
	if m.FallbackCap <= 0 {
		m.FallbackCap = 3
	}
	if m.ListCap <= 0 {
		m.ListCap = 20
	}
	m.canonical = make(map[string]bool, len(m.Dimensions))
	for _, code := range m.Dimensions {
		m.canonical[code] = true
	}
	return &m, nil
}

// Dimension resolves a raw dimension-folder spelling to its canonical code.
// Unrecognized spellings return ok=false and are skipped by the scanner.
func (m *Mapping) Dimension(folder string) (string, bool) {
	code, ok := m.Dimensions[strings.TrimSpace(folder)]
	return code, ok
}

// IsCanonical reports whether code belongs to the closed canonical set.
func (m *Mapping) IsCanonical(code string) bool {
	return m.canonical[code]
}

// Surface resolves a surface-finish folder name. Best effort: unknown or
// empty folders get the configured default rather than failing, because
// several directories in the source libraries carry no surface label.
// ok=false reports that the default was applied.
func (m *Mapping) Surface(folder string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(folder))
	if needle != "" {
		for _, rule := range m.Surfaces {
			if strings.Contains(needle, strings.ToLower(rule.Contains)) {
				return rule.Value, true
			}
		}
	}
	return m.SurfaceDefault, false
}

// Color infers a color value from a normalized product name by scanning the
// ordered keyword rules; the terminal default applies when nothing hits.
func (m *Mapping) Color(normalizedName string) string {
	for _, rule := range m.Colors {
		if strings.Contains(normalizedName, rule.Keyword) {
			return rule.Value
		}
	}
	return m.ColorDefault
}
