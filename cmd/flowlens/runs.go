package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flowlens-ai/flowlens/pkg/runlog"
)

func newRunsCmd() *cobra.Command {
	var (
		configPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded external API calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			runs, err := runlog.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = runs.Close() }()

			entries, err := runs.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tTASK\tMODEL\tCACHE\tSTATUS\tLATENCY MS\tPROMPT\tCOMPLETION")
			for _, e := range entries {
				hit := "miss"
				if e.CacheHit {
					hit = "hit"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
					e.CreatedAt.Format("2006-01-02T15:04:05"), e.Task, e.Model, hit, e.Status,
					e.LatencyMs, e.PromptTokens, e.CompletionTokens)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "flowlens.yaml", "path to config file")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of runs to show")
	return cmd
}
