package ai

import (
	"strings"

	"mealplanner/internal/grocery"
)

func BuildShoppingListPrompt(items []grocery.AggregatedItem, categories []string) string {
	var lines []string
	for _, item := range items {
		if item.Quantity == "" {
			lines = append(lines, "- "+item.Name)
			continue
		}
		lines = append(lines, "- "+item.Name+": "+item.Quantity)
	}

	if len(categories) == 0 {
		categories = []string{
			"Produce", "Meat & Seafood", "Dairy", "Bakery",
			"Pantry", "Frozen", "Beverages", "Other",
		}
	}

	return `
You are a grocery shopping assistant.

Your task:
- Assign every item below to exactly one category.
- Keep item names and quantities EXACTLY as given.
- Add a short healthier-swap note only where one genuinely exists.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Allowed categories:
` + strings.Join(categories, ", ") + `

Required JSON schema:
{
  "items": [
    {
      "name": "string",
      "quantity": "string",
      "category": "string",
      "note": "string (optional)"
    }
  ]
}

SHOPPING LIST:
` + strings.Join(lines, "\n")
}
