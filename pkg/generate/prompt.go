package generate

import (
	"fmt"
	"strings"

	"github.com/flowlens-ai/flowlens/pkg/models"
)

const summarySystemPrompt = "You are an expert at analyzing user behavior and creating clear, engaging summaries of user flows."

// buildSummaryPrompt renders the summary request for a flow and its
// extracted interactions.
func buildSummaryPrompt(flowName string, interactions []models.Interaction) string {
	if flowName == "" {
		flowName = "Unknown Flow"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze this user flow recording and provide a comprehensive summary.\n\n")
	fmt.Fprintf(&sb, "Flow Name: %s\n\n", flowName)
	sb.WriteString("User Actions:\n")
	for i, in := range interactions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, in.Action)
	}
	sb.WriteString(`
Please provide:
1. A clear, 2-3 sentence summary of what the user was trying to accomplish
2. The key steps they took to achieve this goal
3. Any notable patterns or insights about their behavior

Write in a friendly, professional tone suitable for a product demo or tutorial.`)
	return sb.String()
}

// buildImagePrompt renders the social-media image request.
func buildImagePrompt(flowName string) string {
	if flowName == "" {
		flowName = "Product Flow"
	}

	var sb strings.Builder
	sb.WriteString("Create a modern, eye-catching social media image for a product tutorial.\n\n")
	fmt.Fprintf(&sb, "Theme: %s\n\n", flowName)
	sb.WriteString(`The image should:
- Feature a clean, modern interface design
- Show the user journey with visual elements like a search bar, product cards, and a shopping cart
- Use a vibrant, professional color scheme
- Include abstract representations of user interactions (clicks, selections)
- Have a professional, engaging look suitable for social media
- No text in the image

Style: Modern, minimal, professional, engaging, suitable for LinkedIn or Twitter`)
	return sb.String()
}
