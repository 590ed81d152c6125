package shoppinglist

import (
	"context"
	"log"

	"mealplanner/internal/ai"
	"mealplanner/internal/grocery"
	"mealplanner/internal/menu"
)

// Item is one categorized shopping-list line returned to clients.
type Item struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Category string `json:"category"`
	Note     string `json:"note,omitempty"`
}

// MenuGetter is the slice of the menu service this package needs.
type MenuGetter interface {
	Get(id, userID, userOrgID string) (*menu.Menu, error)
}

type Service struct {
	menus MenuGetter
	cache *Cache
	ai    ai.Client
}

func NewService(menus MenuGetter, cache *Cache, aiClient ai.Client) *Service {
	return &Service{menus: menus, cache: cache, ai: aiClient}
}

// --------------------------------------------------
// Generate grocery list (pipeline + keyword categories)
// --------------------------------------------------
func (s *Service) GroceryList(
	ctx context.Context,
	menuID, userID, userOrgID string,
) ([]Item, error) {

	m, err := s.menus.Get(menuID, userID, userOrgID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(menuID, m.Document)

	var cached []Item
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	aggregated := grocery.BuildShoppingList(grocery.Extract(m.Document))

	items := make([]Item, 0, len(aggregated))
	for _, a := range aggregated {
		items = append(items, Item{
			Name:     a.Name,
			Quantity: a.Quantity,
			Category: Categorize(a.Name),
		})
	}

	s.cache.Set(ctx, key, items)
	return items, nil
}

// --------------------------------------------------
// AI-enhanced grocery list (degrades to keyword categories)
// --------------------------------------------------
func (s *Service) EnhancedGroceryList(
	ctx context.Context,
	menuID, userID, userOrgID string,
) ([]Item, error) {

	m, err := s.menus.Get(menuID, userID, userOrgID)
	if err != nil {
		return nil, err
	}

	aggregated := grocery.BuildShoppingList(grocery.Extract(m.Document))
	if s.ai == nil || len(aggregated) == 0 {
		return s.GroceryList(ctx, menuID, userID, userOrgID)
	}

	enhanced, err := ai.EnhanceShoppingList(ctx, s.ai, aggregated, Categories)
	if err != nil {
		// AI trouble never blocks the list
		log.Printf("AI enhancement failed for menu=%s: %v", menuID, err)
		return s.GroceryList(ctx, menuID, userID, userOrgID)
	}

	items := make([]Item, 0, len(enhanced))
	for _, e := range enhanced {
		items = append(items, Item{
			Name:     e.Name,
			Quantity: e.Quantity,
			Category: e.Category,
			Note:     e.Note,
		})
	}
	return items, nil
}
