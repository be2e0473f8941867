package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowlens-ai/flowlens/pkg/flow"
)

func newExtractCmd() *cobra.Command {
	var (
		configPath string
		flowPath   string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the extracted interactions without calling any API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if flowPath != "" {
				cfg.FlowPath = flowPath
			}

			doc, err := flow.Load(cfg.FlowPath)
			if err != nil {
				return err
			}
			interactions := flow.Extract(doc)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(interactions)
			}

			for _, in := range interactions {
				fmt.Printf("%3d. %s\n", in.Index, in.Action)
				if in.Details != "" {
					fmt.Printf("     %s\n", in.Details)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "flowlens.yaml", "path to config file")
	cmd.Flags().StringVar(&flowPath, "flow", "", "path to the flow recording (overrides config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output interactions as JSON")
	return cmd
}
