package annotator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	// EnvEnabled overrides Config.Enabled
	EnvEnabled = "LOCATE_SOURCE_ENABLED"
	// EnvExtended overrides Config.ExtendedLocators
	EnvExtended = "LOCATE_SOURCE_EXTENDED"
	// EnvMode names the build mode, NODE_ENV is consulted when unset
	EnvMode = "LOCATE_SOURCE_MODE"

	developmentMode = "development"
)

// DefaultDependencyMarkers lists path segments identifying dependency code
var DefaultDependencyMarkers = []string{"node_modules"}

// ErrInvalidConfig is returned for a malformed configuration
var ErrInvalidConfig = errors.New("invalid annotator config")

// Config controls the annotator
type Config struct {
	Enabled           bool     `yaml:"enabled"`
	ExtendedLocators  bool     `yaml:"extendedLocators"`
	DependencyMarkers []string `yaml:"dependencyMarkers,omitempty"`
}

// Development reports whether the build mode signals a development build
func Development() bool {
	mode := os.Getenv(EnvMode)
	if mode == "" {
		mode = os.Getenv("NODE_ENV")
	}
	return strings.EqualFold(strings.TrimSpace(mode), developmentMode)
}

// DefaultConfig returns a config enabled only for development builds
func DefaultConfig() *Config {
	return &Config{
		Enabled:           Development(),
		DependencyMarkers: append([]string{}, DefaultDependencyMarkers...),
	}
}

// Validate checks the config shape
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config was nil", ErrInvalidConfig)
	}
	for _, marker := range c.DependencyMarkers {
		if strings.TrimSpace(marker) == "" {
			return fmt.Errorf("%w: empty dependency marker", ErrInvalidConfig)
		}
		if strings.ContainsAny(marker, `/\`) {
			return fmt.Errorf("%w: dependency marker %q must be a single path segment", ErrInvalidConfig, marker)
		}
	}
	return nil
}

// IsDependency reports whether location lies under a dependency directory
func (c *Config) IsDependency(location string) bool {
	segments := strings.FieldsFunc(location, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for _, segment := range segments {
		for _, marker := range c.DependencyMarkers {
			if segment == marker {
				return true
			}
		}
	}
	return false
}

// document is the YAML shape; clickable and devTools are legacy spellings of extendedLocators
type document struct {
	Enabled           *bool    `yaml:"enabled"`
	ExtendedLocators  *bool    `yaml:"extendedLocators"`
	Clickable         *bool    `yaml:"clickable"`
	DevTools          *bool    `yaml:"devTools"`
	DependencyMarkers []string `yaml:"dependencyMarkers"`
}

// ParseConfig decodes a YAML config, unknown keys are rejected
func ParseConfig(data []byte, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := DefaultConfig()
	doc := &document{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc.Enabled != nil {
		cfg.Enabled = *doc.Enabled
	}
	for key, legacy := range map[string]*bool{"clickable": doc.Clickable, "devTools": doc.DevTools} {
		if legacy == nil {
			continue
		}
		logger.Warn("config.legacy_option", "option", key, "use", "extendedLocators")
		cfg.ExtendedLocators = cfg.ExtendedLocators || *legacy
	}
	if doc.ExtendedLocators != nil {
		cfg.ExtendedLocators = *doc.ExtendedLocators
	}
	if doc.DependencyMarkers != nil {
		cfg.DependencyMarkers = doc.DependencyMarkers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads environment files, .env by default. Absent files are ignored,
// malformed ones are errors.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", filename, err)
		}
	}
	return nil
}

// LoadConfig loads .env, reads the YAML config at URL and applies environment overrides
func LoadConfig(ctx context.Context, URL string, logger *slog.Logger) (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	cfg, err := ParseConfig(data, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides flags from LOCATE_SOURCE_ENABLED and LOCATE_SOURCE_EXTENDED
func (c *Config) ApplyEnv() error {
	for name, target := range map[string]*bool{EnvEnabled: &c.Enabled, EnvExtended: &c.ExtendedLocators} {
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			continue
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, name, value)
		}
		*target = parsed
	}
	return nil
}
