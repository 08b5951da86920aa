package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/dlist/internal/log"
)

// EnvPrefix prefixes environment overrides, e.g. DLIST_UI_SHOW_BACKWARD.
const EnvPrefix = "DLIST"

// LocalConfigPath is checked before the user config directory.
const LocalConfigPath = ".dlist/config.yaml"

// UserConfigDir returns ~/.config/dlist, or an empty string if the home
// directory is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dlist")
}

// SetDefaults registers every scalar default on v. Collections are left to
// GetCollections so an explicit empty list still falls back.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("ui.show_backward", defaults.UI.ShowBackward)
	v.SetDefault("ui.show_length", defaults.UI.ShowLength)
	v.SetDefault("ui.toast_duration", defaults.UI.ToastDuration)
	v.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	v.SetDefault("theme.preset", defaults.Theme.Preset)
	v.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	v.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	v.SetDefault("tracing.file_path", DefaultTracesFilePath())
	v.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
}

// Load reads configuration into v from cfgFile, or from the lookup order
// .dlist/config.yaml then ~/.config/dlist/config.yaml. A missing file is not
// an error; defaults and DLIST_ environment overrides still apply. The
// returned path is the file that was read, empty if none.
func Load(v *viper.Viper, cfgFile string) (Config, string, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(LocalConfigPath); err == nil {
		v.SetConfigFile(LocalConfigPath)
	} else {
		if dir := UserConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("unmarshal config: %w", err)
	}

	used := v.ConfigFileUsed()
	if used != "" {
		log.Debug(log.CatConfig, "Loaded config", "path", used)
	}
	return cfg, used, nil
}
