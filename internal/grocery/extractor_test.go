package grocery

import (
	"encoding/json"
	"testing"

	"mealplanner/internal/menu"
)

func TestExtractMixedIngredientShapes(t *testing.T) {
	doc := &menu.Document{
		Days: []menu.Day{
			{
				Meals: []menu.Meal{
					{
						Title: "Breakfast",
						Ingredients: []menu.IngredientRef{
							{Text: "2 cups flour"},
							{Text: "Chicken Breast: 3 oz"},
							{Name: "Milk", Quantity: "1 cup"},
						},
					},
				},
			},
		},
	}

	entries := Extract(doc)

	want := []RawEntry{
		{Name: "2 cups flour", Quantity: ""},
		{Name: "Chicken Breast", Quantity: "3 oz"},
		{Name: "Milk", Quantity: "1 cup"},
	}

	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entry %d: got %+v, want %+v", i, entries[i], w)
		}
	}
}

// Snack ingredients count exactly like meal ingredients.
func TestExtractIncludesSnacks(t *testing.T) {
	doc := &menu.Document{
		Days: []menu.Day{
			{
				Snacks: []menu.Meal{
					{Ingredients: []menu.IngredientRef{{Text: "1 scoop protein powder"}}},
				},
			},
		},
	}

	entries := Extract(doc)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry from snacks, got %d", len(entries))
	}

	items := BuildShoppingList(entries)
	if items[0].Name != "Protein Powder" {
		t.Fatalf("expected 'Protein Powder', got %q", items[0].Name)
	}
	if items[0].Quantity != "1 scoop" {
		t.Fatalf("expected '1 scoop', got %q", items[0].Quantity)
	}
}

func TestExtractToleratesMissingStructure(t *testing.T) {
	if got := Extract(nil); got != nil {
		t.Fatalf("nil document should extract nothing, got %v", got)
	}

	doc := &menu.Document{
		Days: []menu.Day{
			{}, // no meals, no snacks
			{Meals: []menu.Meal{{Title: "Lunch"}}}, // no ingredients
		},
	}

	if got := Extract(doc); len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
}

// Documents arrive as JSON from storage; the ref union must decode
// both shapes in the same list.
func TestExtractFromDecodedJSON(t *testing.T) {
	raw := `{
		"days": [
			{
				"meals": [
					{
						"title": "Dinner",
						"ingredients": [
							"2 cloves garlic",
							{"name": "Pasta", "quantity": "8 oz"},
							{"name": "Basil", "quantity": null},
							{"name": "Eggs", "quantity": 2}
						]
					}
				]
			}
		]
	}`

	var doc menu.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	entries := Extract(&doc)
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d: %v", len(entries), entries)
	}

	if entries[1] != (RawEntry{Name: "Pasta", Quantity: "8 oz"}) {
		t.Errorf("record ref mishandled: %+v", entries[1])
	}
	if entries[2] != (RawEntry{Name: "Basil", Quantity: ""}) {
		t.Errorf("null quantity mishandled: %+v", entries[2])
	}
	if entries[3] != (RawEntry{Name: "Eggs", Quantity: "2"}) {
		t.Errorf("numeric quantity mishandled: %+v", entries[3])
	}
}

// The two-meal scenario from the product side, end to end.
func TestShoppingListEndToEnd(t *testing.T) {
	doc := &menu.Document{
		Days: []menu.Day{
			{
				Meals: []menu.Meal{
					{
						Title: "Meal A",
						Ingredients: []menu.IngredientRef{
							{Name: "Chicken Breast", Quantity: "3 oz"},
							{Text: "1/2 tsp salt"},
						},
					},
					{
						Title: "Meal B",
						Ingredients: []menu.IngredientRef{
							{Name: "chicken breast:", Quantity: "5 oz"},
							{Text: "cup parmesan cheese"},
						},
					},
				},
				Snacks: []menu.Meal{
					{Ingredients: []menu.IngredientRef{{Text: "2 cups flour"}}},
				},
			},
		},
	}

	items := BuildShoppingList(Extract(doc))

	chicken := findItem(t, items, "Chicken Breast")
	if chicken.Quantity != "8 oz" {
		t.Errorf("chicken: expected '8 oz', got %q", chicken.Quantity)
	}

	salt := findItem(t, items, "Salt")
	if salt.Quantity != "1/2 tsp" {
		t.Errorf("salt: expected '1/2 tsp', got %q", salt.Quantity)
	}

	parmesan := findItem(t, items, "Parmesan Cheese")
	if parmesan.Quantity != "0.25 cups" {
		t.Errorf("parmesan: expected '0.25 cups', got %q", parmesan.Quantity)
	}

	flour := findItem(t, items, "Flour")
	if flour.Quantity != "2 cups" {
		t.Errorf("flour: expected '2 cups', got %q", flour.Quantity)
	}
}
