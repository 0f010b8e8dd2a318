package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/tasklog/internal/update"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(flags.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", flags.configPath)
			}
			if err := update.SaveConfigFile(flags.configPath, update.DefaultRuntimeConfig()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flags.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ledger_path: %q\n", cfg.LedgerPath)
			fmt.Fprintf(out, "log_path:    %q\n", cfg.LogPath)
			fmt.Fprintf(out, "log_level:   %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "seed_events: %t\n", cfg.SeedEvents)
			fmt.Fprintf(out, "focus_date:  %q\n", cfg.FocusDate)
			fmt.Fprintf(out, "export_dir:  %q\n", cfg.ExportDir)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
