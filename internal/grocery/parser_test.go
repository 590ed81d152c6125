package grocery

import "testing"

func TestParseExplicitQuantity(t *testing.T) {
	q := ParseQuantity("2 cups flour", "flour")

	if q.Amount == nil || *q.Amount != 2.0 {
		t.Fatalf("expected amount 2.0, got %v", q.Amount)
	}
	if q.Unit != "cup" {
		t.Fatalf("expected unit cup, got %q", q.Unit)
	}
}

func TestParseFraction(t *testing.T) {
	q := ParseQuantity("1/2 tsp salt", "salt")

	if q.Amount == nil || *q.Amount != 0.5 {
		t.Fatalf("expected amount 0.5, got %v", q.Amount)
	}
	if q.Unit != "tsp" {
		t.Fatalf("expected unit tsp, got %q", q.Unit)
	}
}

func TestParseDecimal(t *testing.T) {
	q := ParseQuantity("1.5 lbs ground beef", "ground beef")

	if q.Amount == nil || *q.Amount != 1.5 {
		t.Fatalf("expected amount 1.5, got %v", q.Amount)
	}
	if q.Unit != "lb" {
		t.Fatalf("expected unit lb, got %q", q.Unit)
	}
}

// The cheese defaults are keyed by name, not by a blanket cheese rule:
// parmesan and feta get a quarter cup, everything else a full cup.
func TestCheeseCupDefaults(t *testing.T) {
	tests := []struct {
		raw  string
		name string
		want float64
	}{
		{"cup parmesan cheese", "parmesan cheese", 0.25},
		{"cup feta cheese", "feta cheese", 0.25},
		{"cup mozzarella cheese", "mozzarella cheese", 1.0},
		{"cup cheddar cheese", "cheddar cheese", 1.0},
		{"cup cheese", "cheese", 1.0},
	}

	for _, tt := range tests {
		q := ParseQuantity(tt.raw, tt.name)
		if q.Amount == nil || *q.Amount != tt.want {
			t.Errorf("%q: expected amount %v, got %v", tt.raw, tt.want, q.Amount)
		}
		if q.Unit != "cup" {
			t.Errorf("%q: expected unit cup, got %q", tt.raw, q.Unit)
		}
	}
}

// Explicit numbers always win over defaults.
func TestExplicitQuantityNotOverridden(t *testing.T) {
	q := ParseQuantity("2 cups parmesan cheese", "parmesan cheese")

	if q.Amount == nil || *q.Amount != 2.0 {
		t.Fatalf("expected amount 2.0, got %v", q.Amount)
	}
}

func TestUnitOnlyDefaults(t *testing.T) {
	tests := []struct {
		raw  string
		unit string
	}{
		{"pinch", "pinch"},
		{"clove", "cloves"},
		{"can", "cans"},
		{"slice", "slices"},
		{"scoop", "scoop"},
	}

	for _, tt := range tests {
		q := ParseQuantity(tt.raw, "whatever")
		if q.Amount == nil || *q.Amount != 1.0 {
			t.Errorf("%q: expected default amount 1.0, got %v", tt.raw, q.Amount)
		}
		if q.Unit != tt.unit {
			t.Errorf("%q: expected unit %q, got %q", tt.raw, tt.unit, q.Unit)
		}
	}
}

func TestCanonicalPluralNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		unit string
	}{
		{"2 cloves garlic", "cloves"},
		{"3 cans black beans", "cans"},
		{"4 slices bread", "slices"},
		{"2 pieces", "piece"},
		{"1 piece", "piece"},
		{"1 bottle", "bottle"},
	}

	for _, tt := range tests {
		q := ParseQuantity(tt.raw, "")
		if q.Unit != tt.unit {
			t.Errorf("%q: expected unit %q, got %q", tt.raw, tt.unit, q.Unit)
		}
	}
}

func TestTwoWordUnit(t *testing.T) {
	q := ParseQuantity("8 fl oz milk", "milk")

	if q.Amount == nil || *q.Amount != 8.0 {
		t.Fatalf("expected amount 8.0, got %v", q.Amount)
	}
	if q.Unit != "fl oz" {
		t.Fatalf("expected unit 'fl oz', got %q", q.Unit)
	}
}

func TestBareNumber(t *testing.T) {
	q := ParseQuantity("2", "eggs")

	if q.Amount == nil || *q.Amount != 2.0 {
		t.Fatalf("expected amount 2.0, got %v", q.Amount)
	}
	if q.Unit != UnitPiece {
		t.Fatalf("expected fallback unit piece, got %q", q.Unit)
	}
}

// Unit text the vocabulary does not know still counts as a unit when
// an explicit number precedes it; without a number it is descriptor
// text and falls back to piece.
func TestUnknownUnitKeptVerbatim(t *testing.T) {
	q := ParseQuantity("2 bulbs", "garlic")

	if q.Amount == nil || *q.Amount != 2.0 {
		t.Fatalf("expected amount 2.0, got %v", q.Amount)
	}
	if q.Unit != "bulbs" {
		t.Fatalf("expected unit bulbs, got %q", q.Unit)
	}

	q = ParseQuantity("bulbs", "garlic")
	if q.Amount != nil {
		t.Fatalf("expected nil amount without a number, got %v", *q.Amount)
	}
	if q.Unit != UnitPiece {
		t.Fatalf("expected unit piece, got %q", q.Unit)
	}
}

// Garbage in, piece out. Never an error, never a panic.
func TestUnparseableDegrades(t *testing.T) {
	for _, raw := range []string{"", "   ", "to taste", "some"} {
		q := ParseQuantity(raw, "salt")
		if q.Amount != nil {
			t.Errorf("%q: expected nil amount, got %v", raw, *q.Amount)
		}
		if q.Unit != UnitPiece {
			t.Errorf("%q: expected unit piece, got %q", raw, q.Unit)
		}
	}
}

func TestZeroDenominatorFraction(t *testing.T) {
	q := ParseQuantity("1/0 tsp", "salt")

	if q.Amount == nil || *q.Amount != 1.0 {
		t.Fatalf("expected unit default 1.0, got %v", q.Amount)
	}
	if q.Unit != "tsp" {
		t.Fatalf("expected unit tsp, got %q", q.Unit)
	}
}
