// Package report assembles the final markdown document. It is pure string
// building: no network or cache access, and it renders a complete document
// even when the summary or image is missing.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/flowlens-ai/flowlens/pkg/models"
)

// Data is everything the assembler needs for one report.
type Data struct {
	FlowName     string
	Description  string
	UseCase      string
	CreatedWith  string
	UploadID     string
	StepCount    int
	Interactions []models.Interaction
	Summary      string // empty means the summary generator failed
	ImagePath    string // empty means the image generator failed
	GeneratedAt  time.Time
}

const (
	summaryPlaceholder = "_Summary unavailable: the text-generation service could not be reached. Re-run the analysis to try again._"
	imagePlaceholder   = "_Image unavailable: the image-generation service could not be reached. Re-run the analysis to try again._"
)

// Render produces the full markdown report.
func Render(d Data) string {
	flowName := d.FlowName
	if flowName == "" {
		flowName = "Unknown Flow"
	}

	var sb strings.Builder

	sb.WriteString("# Flow Analysis Report\n\n")
	fmt.Fprintf(&sb, "**Flow Name:** %s\n\n", flowName)
	if d.Description != "" {
		fmt.Fprintf(&sb, "**Description:** %s\n\n", d.Description)
	}
	fmt.Fprintf(&sb, "**Generated:** %s\n\n", d.GeneratedAt.Format("January 2, 2006 at 3:04 PM"))
	sb.WriteString("---\n\n")

	sb.WriteString("## Overview\n\n")
	if d.Summary != "" {
		sb.WriteString(d.Summary)
	} else {
		sb.WriteString(summaryPlaceholder)
	}
	sb.WriteString("\n\n---\n\n")

	sb.WriteString("## User Interactions\n\n")
	if len(d.Interactions) == 0 {
		sb.WriteString("_No interactions were found in this flow._\n")
	} else {
		sb.WriteString("The following actions were performed during this flow:\n\n")
		for _, in := range d.Interactions {
			fmt.Fprintf(&sb, "%d. **%s**\n", in.Index, in.Action)
			if in.Details != "" {
				fmt.Fprintf(&sb, "   - _%s_\n", in.Details)
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString("---\n\n")

	sb.WriteString("## Social Media Image\n\n")
	if d.ImagePath != "" {
		fmt.Fprintf(&sb, "![Flow Social Media Image](./%s)\n\n", d.ImagePath)
		sb.WriteString("*Generated image suitable for sharing on social platforms*\n")
	} else {
		sb.WriteString(imagePlaceholder)
		sb.WriteString("\n")
	}
	sb.WriteString("\n---\n\n")

	sb.WriteString("## Flow Statistics\n\n")
	fmt.Fprintf(&sb, "- **Total Steps:** %d\n", d.StepCount)
	fmt.Fprintf(&sb, "- **User Interactions:** %d\n", len(d.Interactions))
	fmt.Fprintf(&sb, "- **Flow Type:** %s\n", orUnknown(d.UseCase))
	fmt.Fprintf(&sb, "- **Created With:** %s\n", orUnknown(d.CreatedWith))
	sb.WriteString("\n---\n\n")

	if d.UploadID != "" {
		sb.WriteString("## Resources\n\n")
		fmt.Fprintf(&sb, "- **Original Flow:** [View on Arcade](https://app.arcade.software/share/%s)\n", d.UploadID)
		sb.WriteString("\n---\n\n")
	}

	sb.WriteString("*Report generated by Flowlens*\n")
	return sb.String()
}

// RenderHTML converts a markdown report to HTML.
func RenderHTML(markdown string) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
