package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/dlist/internal/app"
	"github.com/zjrosen/dlist/internal/config"
	"github.com/zjrosen/dlist/internal/log"
	"github.com/zjrosen/dlist/internal/processor"
	"github.com/zjrosen/dlist/internal/pubsub"
	"github.com/zjrosen/dlist/internal/registry"
	"github.com/zjrosen/dlist/internal/ui/styles"
	"github.com/zjrosen/dlist/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version    = "dev"
	cfgFile    string
	debug      bool
	cfg        config.Config
	configPath string
	configErr  error
)

var rootCmd = &cobra.Command{
	Use:   "dlist",
	Short: "A terminal playground for doubly-linked lists",
	Long: `A terminal user interface for building and mutating named doubly-linked
lists of integers, with a script runner for replaying operations.`,
	Version:           version,
	PersistentPreRunE: setupLogging,
	RunE:              runApp,
	SilenceUsage:      true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/dlist/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to debug.log (also DLIST_DEBUG)")
}

func initConfig() {
	cfg, configPath, configErr = config.Load(viper.GetViper(), cfgFile)
	if configErr != nil || configPath != "" || cfgFile != "" {
		return
	}

	// No config file found anywhere - create default at .dlist/config.yaml
	if err := config.WriteDefaultConfig(config.LocalConfigPath); err == nil {
		cfg, configPath, configErr = config.Load(viper.GetViper(), config.LocalConfigPath)
	}
	// If write fails, just continue with defaults (no config file)
}

// debugEnabled reports whether --debug or DLIST_DEBUG asked for logs.
func debugEnabled() bool {
	return debug || os.Getenv(config.EnvPrefix+"_DEBUG") != ""
}

var closeLog = func() {}

func setupLogging(cmd *cobra.Command, _ []string) error {
	if !debugEnabled() {
		log.Disable()
		return nil
	}
	cleanup, err := log.InitWithTeaLog("debug.log", "dlist")
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	closeLog = cleanup
	log.Info(log.CatConfig, "dlist starting", "version", version, "command", cmd.Name())
	return nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	defer closeLog()

	if configErr != nil {
		return configErr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	theme := styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.FlattenedColors(),
	}
	if err := styles.ApplyTheme(theme); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	provider, err := newTracing(cfg.Tracing)
	if err != nil {
		return err
	}
	defer shutdownTracing(provider)

	reg := registry.New()
	defer reg.Close()
	commandLog := pubsub.NewBroker[processor.CommandLogEvent]()
	defer commandLog.Close()

	proc := newProcessor(reg, provider.Tracer(), commandLog)
	if err := seed(cmd.Context(), proc, cfg.GetCollections()); err != nil {
		return fmt.Errorf("seeding collections: %w", err)
	}

	model := app.New(proc, commandLog, cfg.UI)
	model.SetConfigPath(configPath)
	if stop := watchConfig(&model, theme); stop != nil {
		defer stop()
	}
	zone.NewGlobal()
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Stop the change and command-log listeners
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// watchConfig hooks the config file up to live reload. It returns nil when
// there is no file to watch or the watcher could not start.
func watchConfig(model *app.Model, theme styles.ThemeConfig) func() {
	if configPath == "" {
		return nil
	}
	w, err := watcher.New(watcher.DefaultConfig(configPath))
	if err != nil {
		log.ErrorErr(log.CatConfig, "config watcher unavailable", err, "path", configPath)
		return nil
	}
	changed, err := w.Start()
	if err != nil {
		log.ErrorErr(log.CatConfig, "starting config watcher", err, "path", configPath)
		return nil
	}
	model.WatchConfig(changed, theme)
	return func() { _ = w.Stop() }
}

// seed creates the configured collections through the processor so they
// show up in the command log like any other change.
func seed(ctx context.Context, proc *processor.Processor, cols []config.CollectionConfig) error {
	for _, cmd := range seedCommands(proc.Registry().Len(), cols) {
		result, err := proc.Process(ctx, cmd)
		if err != nil {
			return err
		}
		if !result.Success {
			return errors.Join(errInvalidSeed, result.Error)
		}
	}
	return nil
}

var errInvalidSeed = errors.New("invalid collection seed")

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
