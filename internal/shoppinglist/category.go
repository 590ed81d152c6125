package shoppinglist

import "strings"

// Store categories, in aisle-walking order.
var Categories = []string{
	"Produce",
	"Meat & Seafood",
	"Dairy",
	"Bakery",
	"Pantry",
	"Frozen",
	"Beverages",
	"Other",
}

// categoryKeywords is checked in order; the first keyword contained in
// the normalized item name wins. New entries are additions, not new
// branches.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"chicken", "Meat & Seafood"},
	{"beef", "Meat & Seafood"},
	{"pork", "Meat & Seafood"},
	{"turkey", "Meat & Seafood"},
	{"salmon", "Meat & Seafood"},
	{"shrimp", "Meat & Seafood"},
	{"tuna", "Meat & Seafood"},
	{"fish", "Meat & Seafood"},
	{"bacon", "Meat & Seafood"},
	{"milk", "Dairy"},
	{"cheese", "Dairy"},
	{"yogurt", "Dairy"},
	{"butter", "Dairy"},
	{"cream", "Dairy"},
	{"egg", "Dairy"},
	{"bread", "Bakery"},
	{"tortilla", "Bakery"},
	{"bagel", "Bakery"},
	{"bun", "Bakery"},
	{"apple", "Produce"},
	{"banana", "Produce"},
	{"berr", "Produce"},
	{"lettuce", "Produce"},
	{"spinach", "Produce"},
	{"kale", "Produce"},
	{"tomato", "Produce"},
	{"onion", "Produce"},
	{"garlic", "Produce"},
	{"pepper", "Produce"},
	{"carrot", "Produce"},
	{"broccoli", "Produce"},
	{"cucumber", "Produce"},
	{"avocado", "Produce"},
	{"lemon", "Produce"},
	{"lime", "Produce"},
	{"basil", "Produce"},
	{"cilantro", "Produce"},
	{"frozen", "Frozen"},
	{"juice", "Beverages"},
	{"coffee", "Beverages"},
	{"tea", "Beverages"},
	{"water", "Beverages"},
	{"flour", "Pantry"},
	{"sugar", "Pantry"},
	{"rice", "Pantry"},
	{"pasta", "Pantry"},
	{"oil", "Pantry"},
	{"salt", "Pantry"},
	{"bean", "Pantry"},
	{"oat", "Pantry"},
	{"cereal", "Pantry"},
	{"sauce", "Pantry"},
	{"spice", "Pantry"},
	{"vinegar", "Pantry"},
}

// Categorize assigns a store category using the keyword table.
// Unmatched items land in "Other".
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range categoryKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.category
		}
	}
	return "Other"
}
