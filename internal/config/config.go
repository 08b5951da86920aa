// Package config provides configuration types and defaults for dlist.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/dlist/internal/log"
)

// CollectionConfig seeds one named collection at startup. The first value
// creates the collection; the rest are appended in order.
type CollectionConfig struct {
	Name   string  `mapstructure:"name" yaml:"name"`
	Values []int64 `mapstructure:"values" yaml:"values"`
}

// Config holds all configuration options for dlist.
type Config struct {
	Collections []CollectionConfig `mapstructure:"collections"`
	UI          UIConfig           `mapstructure:"ui"`
	Theme       ThemeConfig        `mapstructure:"theme"`
	Tracing     TracingConfig      `mapstructure:"tracing"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowBackward  bool          `mapstructure:"show_backward" yaml:"show_backward"`   // Render tail-to-head order as well
	ShowLength    bool          `mapstructure:"show_length" yaml:"show_length"`       // Show element counts next to names
	ToastDuration time.Duration `mapstructure:"toast_duration" yaml:"toast_duration"` // How long toasts stay visible
	MarkdownStyle string        `mapstructure:"markdown_style" yaml:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens. Both nested YAML and quoted
	// dot notation ("value.head": "#FF0000") are accepted.
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// TracingConfig holds tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active. Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend: "none", "file", "stdout", "otlp".
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: ~/.config/dlist/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultToastDuration is used when ui.toast_duration is unset.
const DefaultToastDuration = 3 * time.Second

// DefaultTracesFilePath returns ~/.config/dlist/traces/traces.jsonl, or an
// empty string if the home directory is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dlist", "traces", "traces.jsonl")
}

// DefaultCollections returns the collection shown when none is configured.
func DefaultCollections() []CollectionConfig {
	return []CollectionConfig{
		{Name: "demo", Values: []int64{5, 7, 10}},
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Collections: DefaultCollections(),
		UI: UIConfig{
			ShowBackward:  false,
			ShowLength:    true,
			ToastDuration: DefaultToastDuration,
			MarkdownStyle: "dark",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// GetCollections returns the configured collections, or the defaults if none
// are configured.
func (c Config) GetCollections() []CollectionConfig {
	if len(c.Collections) > 0 {
		return c.Collections
	}
	return DefaultCollections()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := ValidateCollections(c.Collections); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateCollections checks collection seeds for errors.
// Returns nil if the list is empty (defaults are used).
func ValidateCollections(cols []CollectionConfig) error {
	for i, col := range cols {
		if col.Name == "" {
			return fmt.Errorf("collection %d: name is required", i)
		}
		// A registry entry always starts with one value.
		if len(col.Values) == 0 {
			return fmt.Errorf("collection %d (%s): at least one value is required", i, col.Name)
		}
	}
	return nil
}

// ValidateUI checks UI options.
func ValidateUI(ui UIConfig) error {
	if ui.ToastDuration < 0 {
		return fmt.Errorf("ui.toast_duration must not be negative, got %s", ui.ToastDuration)
	}
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Path requirements only matter once tracing is on.
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# dlist configuration

# Collections created at startup. Each needs a name and at least one value;
# the first value seeds the list, the rest are appended in order.
collections:
  - name: demo
    values: [5, 7, 10]

# UI settings
ui:
  show_backward: false    # Also render each list tail-to-head (toggle with tab)
  show_length: true       # Show element counts next to collection names
  toast_duration: 3s      # How long notifications stay on screen
  markdown_style: dark    # Help text style: dark or light

# Theme configuration
theme:
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default dlist theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   value.head: "#73F59F"
  #   value.tail: "#54A0FF"
  #   status.error: "#FF0000"

# Tracing of list operations
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/dlist/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
