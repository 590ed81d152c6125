package grocery

import (
	"strings"

	"mealplanner/internal/menu"
)

// RawEntry is one ingredient occurrence pulled out of a menu document.
// Duplicates across meals and days are expected: each occurrence is a
// separate amount that gets summed later.
type RawEntry struct {
	Name     string
	Quantity string
}

// Extract walks days -> meals/snacks -> ingredients and flattens the
// document into ordered raw entries. Missing days, meals or ingredient
// lists contribute nothing; extraction never fails.
func Extract(doc *menu.Document) []RawEntry {
	if doc == nil {
		return nil
	}

	var entries []RawEntry
	for _, day := range doc.Days {
		for _, meal := range day.Meals {
			entries = appendMeal(entries, meal)
		}
		// snacks are plain meals living in a different list
		for _, snack := range day.Snacks {
			entries = appendMeal(entries, snack)
		}
	}
	return entries
}

func appendMeal(entries []RawEntry, meal menu.Meal) []RawEntry {
	for _, ref := range meal.Ingredients {
		name, quantity := splitRef(ref)
		if name == "" {
			continue
		}
		entries = append(entries, RawEntry{Name: name, Quantity: quantity})
	}
	return entries
}

// splitRef normalizes both ingredient shapes into (name, quantity text).
// A bare string with a colon splits on the first colon ("Chicken
// Breast: 3 oz"); without one the whole string is the name and any
// quantity is left for the parser to find inside it.
func splitRef(ref menu.IngredientRef) (string, string) {
	if ref.Text != "" {
		text := strings.TrimSpace(ref.Text)
		if i := strings.Index(text, ":"); i >= 0 {
			return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
		}
		return text, ""
	}
	return strings.TrimSpace(ref.Name), strings.TrimSpace(ref.Quantity)
}
