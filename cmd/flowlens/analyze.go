package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowlens-ai/flowlens/pkg/flow"
	"github.com/flowlens-ai/flowlens/pkg/generate"
	"github.com/flowlens-ai/flowlens/pkg/report"
	"github.com/flowlens-ai/flowlens/pkg/runlog"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		configPath string
		flowPath   string
		outPath    string
		htmlOut    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a flow recording and write a markdown report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if flowPath != "" {
				cfg.FlowPath = flowPath
			}
			if outPath != "" {
				cfg.ReportPath = outPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			doc, err := flow.Load(cfg.FlowPath)
			if err != nil {
				return err
			}
			interactions := flow.Extract(doc)
			fmt.Printf("Extracted %d interactions from %s\n", len(interactions), cfg.FlowPath)

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			runs, err := runlog.New(cfg.DBPath)
			if err != nil {
				log.Printf("warning: run log disabled: %v", err)
				runs = nil
			}
			defer func() { _ = runs.Close() }()

			ctx := context.Background()

			// Summary: degrade the section on failure, keep going.
			textClient, err := generate.NewOpenAIText(cfg.APIKey, cfg.BaseURL, cfg.SummaryModel)
			if err != nil {
				return err
			}
			summarizer := &generate.Summarizer{
				Client: textClient,
				Store:  store,
				Model:  cfg.SummaryModel,
				Runs:   runs,
			}
			sumCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.RequestTimeout))
			summary, sumHit, err := summarizer.Generate(sumCtx, doc.Name, interactions)
			cancel()
			switch {
			case err != nil:
				log.Printf("warning: summary unavailable, report will be degraded: %v", err)
			case sumHit:
				fmt.Println("Using cached summary")
			default:
				fmt.Printf("Generated summary with %s\n", cfg.SummaryModel)
			}

			// Image: same policy.
			imageClient, err := generate.NewOpenAIImage(cfg.APIKey, cfg.BaseURL, cfg.ImageModel)
			if err != nil {
				return err
			}
			imageGen := &generate.ImageGenerator{
				Client: imageClient,
				Store:  store,
				Model:  cfg.ImageModel,
				Size:   cfg.ImageSize,
				OutDir: cfg.ImageDir,
				Runs:   runs,
			}
			imgCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.RequestTimeout))
			imagePath, imgHit, err := imageGen.Generate(imgCtx, doc.Name, summary)
			cancel()
			switch {
			case err != nil:
				log.Printf("warning: image unavailable, report will be degraded: %v", err)
			case imgHit:
				fmt.Printf("Using cached image, saved to %s\n", imagePath)
			default:
				fmt.Printf("Generated image with %s, saved to %s\n", cfg.ImageModel, imagePath)
			}

			md := report.Render(report.Data{
				FlowName:     doc.Name,
				Description:  doc.Description,
				UseCase:      doc.UseCase,
				CreatedWith:  doc.CreatedWith,
				UploadID:     doc.UploadID,
				StepCount:    len(doc.Steps),
				Interactions: interactions,
				Summary:      summary,
				ImagePath:    imagePath,
				GeneratedAt:  time.Now(),
			})
			if err := os.WriteFile(cfg.ReportPath, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("Report written to %s\n", cfg.ReportPath)

			if htmlOut {
				html, err := report.RenderHTML(md)
				if err != nil {
					return err
				}
				htmlPath := strings.TrimSuffix(cfg.ReportPath, ".md") + ".html"
				if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
					return fmt.Errorf("write html report: %w", err)
				}
				fmt.Printf("HTML report written to %s\n", htmlPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "flowlens.yaml", "path to config file")
	cmd.Flags().StringVar(&flowPath, "flow", "", "path to the flow recording (overrides config)")
	cmd.Flags().StringVar(&outPath, "out", "", "path for the markdown report (overrides config)")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "also write an HTML rendering of the report")
	return cmd
}
