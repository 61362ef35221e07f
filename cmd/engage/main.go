package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"engagedash/cmd/engage/ui"
	"engagedash/internal/config"
	"engagedash/internal/logging"
	"engagedash/internal/state"
)

var (
	// Global flags
	cfgFile   string
	statePath string
	verbose   bool
	darkMode  bool

	// Resolved at startup
	cfg    *config.Config
	logger *zap.Logger

	// clock is replaced in tests.
	clock = time.Now
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "engage",
	Short: "B2B engagement dashboard for the terminal",
	Long: `engage renders a static dashboard of campaigns, segments, templates,
connectors, analytics and backend health from a local JSON state file.

Run without arguments to show the dashboard. A missing or unreadable state
file is replaced with sample data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: .engage/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "State file (default: data/state.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Force the dark theme")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(campaignCmd)
	rootCmd.AddCommand(creativeCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads .env and the config file, applies flag overrides and builds
// the logger.
func setup() error {
	if _, err := config.LoadDotEnv(config.DefaultEnvFile); err != nil {
		return err
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if statePath != "" {
		c.StatePath = statePath
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if darkMode {
		c.UI.Theme = config.ThemeDark
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	l, err := logging.New(c.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, logger = c, l
	logging.For(logger, logging.CategoryCLI).Debug("config loaded",
		zap.String("config", path),
		zap.String("state", cfg.StatePath),
		zap.String("theme", cfg.UI.Theme))
	return nil
}

func newStore() *state.Store {
	return state.NewStore(cfg.StatePath,
		state.WithClock(clock),
		state.WithLogger(logging.For(logger, logging.CategoryState)),
		state.WithBackupCorrupt(cfg.BackupCorruptState))
}

func currentStyles() ui.Styles {
	return ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
}
