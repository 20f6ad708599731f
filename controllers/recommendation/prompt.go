package recommendationControllers

import (
	"fmt"
	"strings"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

const consultantRole = "You are an expert fashion consultant specializing in Indian ethnic wear. " +
	"Provide personalized product recommendations based on user preferences, occasions, and style preferences."

// buildPrompt renders the catalog, preferences and recent activity into
// the instruction sent to every remote provider. The expected reply
// format is spelled out so parseModelResponse can pick it back up.
func buildPrompt(req SuggestionRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Context: %s\n", req.Context)
	if req.CurrentProduct != nil {
		fmt.Fprintf(&b, "Currently viewing: %s (%s, ₹%d)\n",
			req.CurrentProduct.Name, req.CurrentProduct.Category, req.CurrentProduct.Price)
	}

	b.WriteString("\nUser Preferences:\n")
	fmt.Fprintf(&b, "- Occasion: %s\n", orNotSpecified(req.Preferences.Occasion))
	fmt.Fprintf(&b, "- Price Range: %s\n", orNotSpecified(req.Preferences.PriceRange))
	fmt.Fprintf(&b, "- Material Preference: %s\n", orNotSpecified(req.Preferences.Material))
	fmt.Fprintf(&b, "- Style: %s\n", orNotSpecified(req.Preferences.Style))
	fmt.Fprintf(&b, "- Size: %s\n", orNotSpecified(req.Preferences.Size))

	fmt.Fprintf(&b, "\nRecent Activity: %s\n", recentActivity(req.History))

	b.WriteString("\nAvailable Products:\n")
	for _, p := range req.Catalog {
		rating := "N/A"
		if p.Rating > 0 {
			rating = fmt.Sprintf("%.1f", p.Rating)
		}
		fmt.Fprintf(&b, "ID: %s, Name: %s, Category: %s, Material: %s, Price: ₹%d, Rating: %s\n",
			p.ID, p.Name, p.Category, p.Material, p.Price, rating)
	}

	b.WriteString(`
Please recommend 3-6 products that best match the user's preferences and context. For each recommendation, provide:
1. Product ID
2. Score (0-1)
3. Brief reason for recommendation

Format your response as JSON:
{
  "recommendations": [
    {
      "productId": "1",
      "score": 0.95,
      "reason": "Perfect match for wedding occasion with premium silk material"
    }
  ]
}
`)

	return b.String()
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// recentActivity summarizes the last five interactions as action:productId
// pairs.
func recentActivity(history []models.Interaction) string {
	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	var parts []string
	for _, h := range history {
		parts = append(parts, h.Action+":"+h.ProductID)
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}
