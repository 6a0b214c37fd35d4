// Package config loads CLI configuration for rendering mime bundles.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-rendermime/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds rendering configuration consumed by the CLI. Zero values
// defer to Default.
type Config struct {
	// Prefer is the mimetype preference order, most-preferred first.
	Prefer []string `yaml:"prefer"`
	// BaseURL resolves relative resource references when set.
	BaseURL string `yaml:"baseUrl"`
	// Sanitize controls whether the default sanitizer is supplied to the
	// renderer. Nil means true.
	Sanitize *bool `yaml:"sanitize"`
	// ClassPrefix prefixes CSS classes on highlighted code spans.
	ClassPrefix string `yaml:"classPrefix"`
	// Standalone wraps the rendered fragment in a full HTML5 document.
	Standalone bool `yaml:"standalone"`
	// Style names the chroma style used for standalone highlight CSS.
	Style string `yaml:"style"`
}

// Default returns the configuration used when no file or flag overrides
// a setting.
func Default() Config {
	sanitize := true
	return Config{
		Sanitize:    &sanitize,
		ClassPrefix: "rm-hl-",
		Style:       "github",
	}
}

// Load reads and parses a YAML config file, overlaying it on Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// SanitizeEnabled reports the effective sanitize setting.
func (c Config) SanitizeEnabled() bool {
	return c.Sanitize == nil || *c.Sanitize
}
