package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"strava-insights/internal/config"
	"strava-insights/internal/export"
	"strava-insights/internal/service"
	"strava-insights/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	exportFile string

	// Loaded configuration, populated before any command runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "strava-insights",
	Short: "Analyze a Strava CSV export in your terminal",
	Long: `strava-insights reads the activities.csv from a Strava account export,
cleans it up, and explores it: summary statistics, weekly and monthly
patterns, personal records, gear usage, and a running vs cycling
comparison. The root command opens an interactive browser; the report
subcommand prints the same analyses to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		queries, err := loadActivities()
		if err != nil {
			return err
		}

		app := tui.NewApp(queries, *cfg)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running UI: %w", err)
		}
		return nil
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cobra.OnInitialize(initConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.strava-insights/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&exportFile, "file", "f", "", "activities csv from a Strava export (overrides config)")
}

func initConfig() {
	c, err := config.Load(cfgFile)
	if errors.Is(err, config.ErrNoConfig) {
		slog.Warn("config file not found, using defaults", slog.String("path", cfgFile))
		def := config.DefaultConfig()
		c = &def
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("file") {
		cfg.ExportPath = exportFile
	}
}

// loadActivities validates the config, loads the export, and wraps it
// in a query service. Shared by the root and report commands.
func loadActivities() (*service.QueryService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	col, err := export.LoadFile(cfg.ExportPath)
	if err != nil {
		return nil, err
	}

	slog.Info("export loaded",
		slog.String("file", cfg.ExportPath),
		slog.Int("activities", len(col)))

	return service.NewQueryService(col), nil
}
