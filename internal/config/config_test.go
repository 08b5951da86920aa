package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestValidateCollections_Empty(t *testing.T) {
	require.NoError(t, ValidateCollections(nil), "empty collections should be valid (uses defaults)")
}

func TestValidateCollections_Valid(t *testing.T) {
	cols := []CollectionConfig{
		{Name: "a", Values: []int64{1}},
		{Name: "b", Values: []int64{2, 3}},
	}
	require.NoError(t, ValidateCollections(cols))
}

func TestValidateCollections_MissingName(t *testing.T) {
	err := ValidateCollections([]CollectionConfig{{Values: []int64{1}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "collection 0: name is required")
}

func TestValidateCollections_NoValues(t *testing.T) {
	err := ValidateCollections([]CollectionConfig{
		{Name: "ok", Values: []int64{1}},
		{Name: "empty"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "collection 1 (empty)")
	require.Contains(t, err.Error(), "at least one value")
}

func TestValidateUI(t *testing.T) {
	require.NoError(t, ValidateUI(UIConfig{ToastDuration: time.Second}))
	require.Error(t, ValidateUI(UIConfig{ToastDuration: -time.Second}))
	require.NoError(t, ValidateUI(UIConfig{MarkdownStyle: "light"}))
	require.ErrorContains(t, ValidateUI(UIConfig{MarkdownStyle: "auto"}), "ui.markdown_style")
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TracingConfig
		wantErr string
	}{
		{name: "defaults", cfg: Defaults().Tracing},
		{name: "sample rate too high", cfg: TracingConfig{SampleRate: 1.5}, wantErr: "sample_rate"},
		{name: "negative sample rate", cfg: TracingConfig{SampleRate: -0.1}, wantErr: "sample_rate"},
		{name: "bad exporter", cfg: TracingConfig{Exporter: "zipkin"}, wantErr: "tracing.exporter"},
		{name: "file without path", cfg: TracingConfig{Enabled: true, Exporter: "file"}, wantErr: "file_path is required"},
		{name: "disabled file without path", cfg: TracingConfig{Enabled: false, Exporter: "file"}},
		{name: "otlp without endpoint", cfg: TracingConfig{Enabled: true, Exporter: "otlp"}, wantErr: "otlp_endpoint is required"},
		{name: "stdout", cfg: TracingConfig{Enabled: true, Exporter: "stdout", SampleRate: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTracing(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.NoError(t, cfg.Validate())
	require.Equal(t, DefaultCollections(), cfg.Collections)
	require.True(t, cfg.UI.ShowLength)
	require.False(t, cfg.UI.ShowBackward)
	require.Equal(t, DefaultToastDuration, cfg.UI.ToastDuration)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
	require.False(t, cfg.Tracing.Enabled)
}

func TestGetCollections_FallsBackToDefaults(t *testing.T) {
	require.Equal(t, DefaultCollections(), Config{}.GetCollections())

	custom := Config{Collections: []CollectionConfig{{Name: "x", Values: []int64{9}}}}
	require.Equal(t, custom.Collections, custom.GetCollections())
}

func TestFlattenedColors(t *testing.T) {
	theme := ThemeConfig{Colors: map[string]any{
		"value": map[string]any{
			"head": "#111111",
			"tail": "#222222",
		},
		"status.error": "#333333",
		"legacy":       map[any]any{"muted": "#444444"},
	}}

	require.Equal(t, map[string]string{
		"value.head":   "#111111",
		"value.tail":   "#222222",
		"status.error": "#333333",
		"legacy.muted": "#444444",
	}, theme.FlattenedColors())
}

func TestWriteDefaultConfig_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg, used, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.NoError(t, cfg.Validate())
	require.Equal(t, []CollectionConfig{{Name: "demo", Values: []int64{5, 7, 10}}}, cfg.Collections)
	require.Equal(t, 3*time.Second, cfg.UI.ToastDuration)
	require.True(t, cfg.UI.ShowLength)
}

func TestLoad_ReadsFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `collections:
  - name: primes
    values: [2, 3, 5]
ui:
  show_backward: false
  toast_duration: 500ms
theme:
  preset: nord
  colors:
    value.head: "#FFFFFF"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DLIST_UI_SHOW_BACKWARD", "true")
	t.Setenv("DLIST_TRACING_SAMPLE_RATE", "0.25")

	cfg, _, err := Load(viper.New(), path)
	require.NoError(t, err)

	require.Equal(t, "primes", cfg.Collections[0].Name)
	require.Equal(t, []int64{2, 3, 5}, cfg.Collections[0].Values)
	require.True(t, cfg.UI.ShowBackward, "env should override file")
	require.Equal(t, 500*time.Millisecond, cfg.UI.ToastDuration)
	require.True(t, cfg.UI.ShowLength, "unset keys keep defaults")
	require.Equal(t, "nord", cfg.Theme.Preset)
	require.Equal(t, "#FFFFFF", cfg.Theme.FlattenedColors()["value.head"])
	require.Equal(t, 0.25, cfg.Tracing.SampleRate)
}

func TestLoad_MissingExplicitFileIsAnError(t *testing.T) {
	_, _, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, used, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, DefaultToastDuration, cfg.UI.ToastDuration)
	require.Equal(t, DefaultCollections(), cfg.GetCollections())
}
