// Package flow loads Arcade flow recordings and extracts an ordered list
// of human-readable user interactions from them.
package flow

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/flowlens-ai/flowlens/pkg/models"
)

// Load reads and parses a flow recording from path.
func Load(path string) (*models.FlowDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flow: %w", err)
	}
	var doc models.FlowDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse flow: %w", err)
	}
	return &doc, nil
}

// Phrasing for hotspot kinds without a label, and for captured events.
const (
	actionClicked  = "Clicked on page"
	actionTyped    = "Typed search query"
	actionScrolled = "Scrolled page to view more content"
	actionDragged  = "Dragged element on page"
	actionGeneric  = "Performed an action"
)

// Extract walks the document's steps in order and produces one Interaction
// per hotspot, followed by interactions for captured events. Output order
// is strictly input order. Missing or malformed fields never abort the
// extraction; they degrade to generic placeholder descriptions.
func Extract(doc *models.FlowDocument) []models.Interaction {
	var interactions []models.Interaction

	add := func(kind, action, details, url string) {
		interactions = append(interactions, models.Interaction{
			Index:   len(interactions) + 1,
			Kind:    kind,
			Action:  action,
			Details: details,
			URL:     url,
		})
	}

	for _, step := range doc.Steps {
		switch step.Type {
		case "CHAPTER":
			title := strings.TrimSpace(step.Title)
			if title == "" || strings.Contains(strings.ToLower(title), "thank you") {
				continue
			}
			add("chapter", "Started section: "+title, step.Subtitle, "")

		case "VIDEO":
			// Motion steps are covered by capturedEvents below.

		default:
			// IMAGE steps represent user clicks. Prefer hotspot labels;
			// fall back to the recorded click context.
			if len(step.Hotspots) == 0 {
				add("click", describeClickContext(step.ClickContext), "", step.PageContext.URL)
				continue
			}
			for _, h := range step.Hotspots {
				add(hotspotKind(h), describeHotspot(h, step.ClickContext), "", step.PageContext.URL)
			}
		}
	}

	for _, ev := range doc.CapturedEvents {
		switch ev.Type {
		case "typing":
			add("typing", actionTyped, "User entered text in search field", "")
		case "scrolling":
			add("scroll", actionScrolled, "User browsed through available options", "")
		}
	}

	return interactions
}

func hotspotKind(h models.Hotspot) string {
	if h.Kind != "" {
		return h.Kind
	}
	return "click"
}

// describeHotspot maps one hotspot to a human-readable phrase. A label
// always wins; otherwise the kind selects a fixed phrasing, and an unknown
// kind falls back to the click context.
func describeHotspot(h models.Hotspot, cc models.ClickContext) string {
	if label := cleanLabel(h.Label); label != "" {
		return label
	}
	switch h.Kind {
	case "click":
		return actionClicked
	case "type":
		return actionTyped
	case "scroll":
		return actionScrolled
	case "drag":
		return actionDragged
	}
	return describeClickContext(cc)
}

// cleanLabel strips the markdown emphasis Arcade puts in hotspot labels.
func cleanLabel(label string) string {
	return strings.TrimSpace(strings.ReplaceAll(label, "*", ""))
}

// describeClickContext derives a description from the clicked DOM element.
func describeClickContext(cc models.ClickContext) string {
	text := strings.TrimSpace(cc.Text)
	lower := strings.ToLower(text)

	switch cc.ElementType {
	case "button":
		if strings.Contains(lower, "cart") {
			return fmt.Sprintf("Clicked '%s' button", text)
		}
		if text != "" {
			return fmt.Sprintf("Clicked the '%s' button", text)
		}
	case "image":
		if text != "" {
			return fmt.Sprintf("Clicked on '%s' image", text)
		}
		return "Clicked on product image"
	case "link":
		if strings.Contains(lower, "cart") {
			return "Clicked on shopping cart icon to view cart"
		}
		if text != "" {
			return "Clicked link: " + text
		}
	case "other":
		if strings.Contains(lower, "search") {
			return "Clicked the search bar to start looking for products"
		}
	}

	if text != "" {
		return "Interacted with " + text
	}
	return actionGeneric
}
