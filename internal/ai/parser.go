package ai

import (
	"context"
	"encoding/json"
	"errors"

	"mealplanner/internal/grocery"
)

// EnhancedItem is one categorized, optionally annotated list line.
type EnhancedItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
	Note     string `json:"note,omitempty"`
}

type enhancedList struct {
	Items []EnhancedItem `json:"items"`
}

// EnhanceShoppingList calls the client and validates its JSON output.
func EnhanceShoppingList(
	ctx context.Context,
	client Client,
	items []grocery.AggregatedItem,
	categories []string,
) ([]EnhancedItem, error) {

	rawJSON, err := client.EnhanceShoppingList(ctx, items, categories)
	if err != nil {
		return nil, err
	}

	var parsed enhancedList
	if err := json.Unmarshal([]byte(rawJSON), &parsed); err != nil {
		return nil, errors.New("invalid AI JSON output")
	}

	if len(parsed.Items) == 0 {
		return nil, errors.New("AI returned no items")
	}

	return parsed.Items, nil
}
