package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/tasklog/internal/model"
	"github.com/sandeepkv93/tasklog/internal/storage"
)

func newLedgerCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Read the submitted-hours ledger",
	}

	var filter storage.EntryListFilter
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List submitted work log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if filter.Date != "" {
				if _, err := model.ParseDate(filter.Date); err != nil {
					return fmt.Errorf("--date: %w", err)
				}
			}
			repo, err := openLedger(cmd, flags)
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx := context.Background()
			entries, err := repo.ListEntries(ctx, filter)
			if err != nil {
				return fmt.Errorf("list entries: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tPROJECT\tTASK\tHOURS\tBILLING\tEVENT")
			total := 0.0
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.Date, e.Project, e.TaskName, model.FormatHours(e.Hours), e.BillingStatus, e.EventID)
				total += e.Hours
			}
			fmt.Fprintf(w, "\t\tTOTAL\t%s\t\t\n", model.FormatHours(total))
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&filter.Date, "date", "", "only entries on this day (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&filter.Project, "project", "", "only entries for this project")
	listCmd.Flags().IntVar(&filter.Limit, "limit", 0, "maximum entries to print")
	listCmd.Flags().IntVar(&filter.Offset, "offset", 0, "entries to skip")

	cmd.AddCommand(listCmd)
	return cmd
}

func openLedger(cmd *cobra.Command, flags *rootFlags) (*storage.SQLiteRepository, error) {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return nil, err
	}
	if cfg.LedgerPath == "" {
		return nil, errors.New("no ledger configured (set --ledger or TASKLOG_LEDGER)")
	}
	repo, err := storage.OpenSQLite(cfg.LedgerPath)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	return repo, nil
}
