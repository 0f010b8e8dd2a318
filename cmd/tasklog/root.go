package main

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/tasklog/internal/log"
	"github.com/sandeepkv93/tasklog/internal/model"
	"github.com/sandeepkv93/tasklog/internal/session"
	"github.com/sandeepkv93/tasklog/internal/storage"
	"github.com/sandeepkv93/tasklog/internal/update"
)

type rootFlags struct {
	configPath string
	ledger     string
	logFile    string
	logLevel   string
	seed       bool
	focusDate  string
	exportDir  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "tasklog",
		Short:         "Log work hours on a calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "tasklog.yaml", "path to the YAML config file")
	pf.StringVar(&flags.ledger, "ledger", "", "sqlite ledger path (empty disables the ledger)")
	pf.StringVar(&flags.logFile, "log-file", "", "log file path (empty disables logging)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flags.seed, "seed", true, "start with the sample event")
	cmd.Flags().StringVar(&flags.focusDate, "focus-date", "", "day the calendar opens on (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.exportDir, "export-dir", "", "directory for .ics exports")

	cmd.AddCommand(newConfigCmd(flags), newLedgerCmd(flags))
	return cmd
}

// resolveConfig layers defaults, the config file, the environment and any
// flags the user set explicitly, in that order.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (update.RuntimeConfig, error) {
	cfg, err := update.LoadConfigFile(flags.configPath, update.DefaultRuntimeConfig())
	if err != nil {
		return cfg, err
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("ledger") {
		cfg.LedgerPath = flags.ledger
	}
	if changed("log-file") {
		cfg.LogPath = flags.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("seed") {
		cfg.SeedEvents = flags.seed
	}
	if changed("focus-date") {
		cfg.FocusDate = flags.focusDate
	}
	if changed("export-dir") {
		cfg.ExportDir = flags.exportDir
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setupLogging(cfg update.RuntimeConfig) (io.Closer, error) {
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	if cfg.LogPath == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile(cfg.LogPath, "")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(nil)
	return f, nil
}

func runTUI(cfg update.RuntimeConfig) error {
	logFile, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	var ledger storage.Repository
	if cfg.LedgerPath != "" {
		repo, err := storage.OpenSQLite(cfg.LedgerPath)
		if err != nil {
			return fmt.Errorf("open ledger: %w", err)
		}
		defer repo.Close()
		ledger = repo
	}

	var opts []session.Option
	if cfg.SeedEvents {
		opts = append(opts, session.WithEvents(session.DefaultSeed(model.DateOf(time.Now()), nil)))
	}
	ctrl := session.NewController(opts...)

	log.Info("tasklog starting", "ledger", cfg.LedgerPath, "seed", cfg.SeedEvents)
	program := tea.NewProgram(update.NewModelWithConfig(ctrl, ledger, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	log.Info("tasklog stopped")
	return nil
}
