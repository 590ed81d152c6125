package ai

import (
	"context"

	"mealplanner/internal/grocery"
)

// Client turns an aggregated shopping list into a categorized,
// annotated one. Implementations must return STRICT JSON matching the
// schema in prompt.go.
type Client interface {
	EnhanceShoppingList(
		ctx context.Context,
		items []grocery.AggregatedItem,
		categories []string,
	) (string, error)
}
