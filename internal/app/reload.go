package app

import (
	"maps"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/zjrosen/dlist/internal/config"
	"github.com/zjrosen/dlist/internal/log"
	helpview "github.com/zjrosen/dlist/internal/ui/help"
	"github.com/zjrosen/dlist/internal/ui/styles"
	"github.com/zjrosen/dlist/internal/ui/toaster"
)

// configChangedMsg is sent when the watched config file was rewritten.
type configChangedMsg struct{}

// WatchConfig reloads ui and theme settings from the config path whenever
// changed fires. theme is the theme currently applied.
func (m *Model) WatchConfig(changed <-chan struct{}, theme styles.ThemeConfig) {
	m.configChanged = changed
	m.theme = theme
}

func waitForConfig(changed <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changed; !ok {
			return nil
		}
		return configChangedMsg{}
	}
}

// reloadConfig re-reads the config file. Our own saves land here too, so a
// toast is only raised when something visible changed.
func (m Model) reloadConfig() (tea.Model, tea.Cmd) {
	wait := waitForConfig(m.configChanged)

	cfg, _, err := config.Load(viper.New(), m.configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err, "path", m.configPath)
		next, dismiss := m.toast("config not reloaded: "+err.Error(), toaster.StyleWarn)
		return next, tea.Batch(wait, dismiss)
	}

	changed := false
	theme := styles.ThemeConfig{Preset: cfg.Theme.Preset, Colors: cfg.Theme.FlattenedColors()}
	if theme.Preset != m.theme.Preset || !maps.Equal(theme.Colors, m.theme.Colors) {
		if err := styles.ApplyTheme(theme); err != nil {
			next, dismiss := m.toast("theme not applied: "+err.Error(), toaster.StyleWarn)
			return next, tea.Batch(wait, dismiss)
		}
		m.theme = theme
		if m.panels != nil {
			_ = m.panels.Flush(m.ctx)
		}
		changed = true
	}
	if cfg.UI != m.uiConfig() {
		m.showBackward = cfg.UI.ShowBackward
		m.showLength = cfg.UI.ShowLength
		m.toastDuration = cfg.UI.ToastDuration
		if cfg.UI.MarkdownStyle != m.markdownStyle {
			m.markdownStyle = cfg.UI.MarkdownStyle
			m.helpView = helpview.New(m.markdownStyle).SetSize(m.width, m.height)
		}
		changed = true
	}

	if !changed {
		return m, wait
	}
	log.Info(log.CatConfig, "config reloaded", "path", m.configPath)
	next, dismiss := m.toast("config reloaded", toaster.StyleInfo)
	return next, tea.Batch(wait, dismiss)
}
