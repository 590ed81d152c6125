package grocery

import (
	"math/rand"
	"testing"
)

func findItem(t *testing.T, items []AggregatedItem, name string) AggregatedItem {
	t.Helper()
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("item %q not found in %v", name, items)
	return AggregatedItem{}
}

func TestDuplicatesAreSummed(t *testing.T) {
	entries := []RawEntry{
		{Name: "Chicken Breast", Quantity: "3 oz"},
		{Name: "chicken breast:", Quantity: "5 oz"},
	}

	items := BuildShoppingList(entries)

	if len(items) != 1 {
		t.Fatalf("expected 1 aggregated item, got %d", len(items))
	}
	if items[0].Name != "Chicken Breast" {
		t.Fatalf("expected name 'Chicken Breast', got %q", items[0].Name)
	}
	if items[0].Quantity != "8 oz" {
		t.Fatalf("expected quantity '8 oz', got %q", items[0].Quantity)
	}
}

// Amounts recorded under a minority unit are dropped from the sum, not
// converted. The ingredient still shows up once.
func TestCrossUnitAmountsExcluded(t *testing.T) {
	entries := []RawEntry{
		{Name: "garlic", Quantity: "2 cloves"},
		{Name: "garlic", Quantity: "1 bulb"},
		{Name: "garlic", Quantity: "3 cloves"},
	}

	items := BuildShoppingList(entries)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != "5 cloves" {
		t.Fatalf("expected '5 cloves', got %q", items[0].Quantity)
	}
}

// A unit written out in the source data shows up in the list even when
// the parser vocabulary does not know it.
func TestUnknownUnitSurfacesInList(t *testing.T) {
	entries := []RawEntry{
		{Name: "garlic", Quantity: "2 bulbs"},
	}

	items := BuildShoppingList(entries)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != "2 bulbs" {
		t.Fatalf("expected '2 bulbs', got %q", items[0].Quantity)
	}
}

func TestUnitModeTieBreaksByFirstObserved(t *testing.T) {
	entries := []RawEntry{
		{Name: "butter", Quantity: "2 tbsp"},
		{Name: "butter", Quantity: "1 cup"},
		{Name: "butter", Quantity: "1 cup"},
		{Name: "butter", Quantity: "3 tbsp"},
	}

	items := BuildShoppingList(entries)

	if items[0].Quantity != "5 tbsp" {
		t.Fatalf("expected tie to break to tbsp, got %q", items[0].Quantity)
	}
}

// Summation must not depend on occurrence order.
func TestSumIsOrderIndependent(t *testing.T) {
	entries := []RawEntry{
		{Name: "rice", Quantity: "1 cup"},
		{Name: "rice", Quantity: "1/2 cup"},
		{Name: "rice", Quantity: "2 cups"},
		{Name: "olive oil", Quantity: "1 tbsp"},
		{Name: "olive oil", Quantity: "2 tbsp"},
	}

	want := map[string]string{}
	for _, item := range BuildShoppingList(entries) {
		want[item.Name] = item.Quantity
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]RawEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		for _, item := range BuildShoppingList(shuffled) {
			if want[item.Name] != item.Quantity {
				t.Fatalf("permutation %d: %s = %q, want %q",
					i, item.Name, item.Quantity, want[item.Name])
			}
		}
	}
}

// An ingredient that was never quantified still appears, name only.
func TestUnquantifiedIngredientKeepsName(t *testing.T) {
	entries := []RawEntry{
		{Name: "salt", Quantity: ""},
		{Name: "salt", Quantity: ""},
	}

	items := BuildShoppingList(entries)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Salt" {
		t.Fatalf("expected 'Salt', got %q", items[0].Name)
	}
	if items[0].Quantity != "" {
		t.Fatalf("expected empty quantity, got %q", items[0].Quantity)
	}
}

func TestNameNormalization(t *testing.T) {
	entries := []RawEntry{
		{Name: "  Olive   Oil ", Quantity: "1 tbsp"},
		{Name: "olive oil:", Quantity: "2 tbsp"},
		{Name: "OLIVE OIL", Quantity: "1 tbsp"},
	}

	items := BuildShoppingList(entries)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %v", len(items), items)
	}
	if items[0].Name != "Olive Oil" {
		t.Fatalf("expected 'Olive Oil', got %q", items[0].Name)
	}
	if items[0].Quantity != "4 tbsp" {
		t.Fatalf("expected '4 tbsp', got %q", items[0].Quantity)
	}
}

// Quantities embedded in bare ingredient strings are pulled out and
// the leftover text becomes the name.
func TestEmbeddedQuantityInName(t *testing.T) {
	entries := []RawEntry{
		{Name: "2 cups flour", Quantity: ""},
		{Name: "1 cup flour", Quantity: ""},
	}

	items := BuildShoppingList(entries)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %v", len(items), items)
	}
	if items[0].Name != "Flour" {
		t.Fatalf("expected 'Flour', got %q", items[0].Name)
	}
	if items[0].Quantity != "3 cups" {
		t.Fatalf("expected '3 cups', got %q", items[0].Quantity)
	}
}

func TestOutputKeepsFirstObservedOrder(t *testing.T) {
	entries := []RawEntry{
		{Name: "flour", Quantity: "2 cups"},
		{Name: "sugar", Quantity: "1 cup"},
		{Name: "eggs", Quantity: "3"},
		{Name: "flour", Quantity: "1 cup"},
	}

	items := BuildShoppingList(entries)

	wantOrder := []string{"Flour", "Sugar", "Eggs"}
	if len(items) != len(wantOrder) {
		t.Fatalf("expected %d items, got %d", len(wantOrder), len(items))
	}
	for i, name := range wantOrder {
		if items[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, items[i].Name)
		}
	}
}

func TestPieceUnitRendersBareCount(t *testing.T) {
	entries := []RawEntry{
		{Name: "eggs", Quantity: "2"},
		{Name: "eggs", Quantity: "1"},
	}

	items := BuildShoppingList(entries)

	if items[0].Quantity != "3" {
		t.Fatalf("expected bare '3', got %q", items[0].Quantity)
	}
}
