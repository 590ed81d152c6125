package menu

import (
	"encoding/json"
	"strconv"
	"time"
)

// Document is the stored meal-plan structure: days, each holding
// meals and snacks. Snacks carry no special fields; they are meals
// that happen to live in a different list.
type Document struct {
	Days []Day `json:"days"`
}

type Day struct {
	Meals  []Meal `json:"meals,omitempty"`
	Snacks []Meal `json:"snacks,omitempty"`
}

type Meal struct {
	Title       string          `json:"title,omitempty"`
	Ingredients []IngredientRef `json:"ingredients,omitempty"`
}

// IngredientRef accepts both shapes AI generators and clients send:
// a bare string ("2 cups flour", "Chicken Breast: 3 oz") or a record
// {"name": ..., "quantity": ...} where quantity may be a string, a
// number, or null. Exactly one of Text / Name+Quantity is populated.
type IngredientRef struct {
	Text     string
	Name     string
	Quantity string
}

func (r *IngredientRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Text = s
		return nil
	}

	var rec struct {
		Name     string          `json:"name"`
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		// unknown shape contributes nothing, never fails the decode
		return nil
	}

	r.Name = rec.Name
	r.Quantity = decodeQuantity(rec.Quantity)
	return nil
}

func (r IngredientRef) MarshalJSON() ([]byte, error) {
	if r.Text != "" {
		return json.Marshal(r.Text)
	}
	return json.Marshal(struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity,omitempty"`
	}{Name: r.Name, Quantity: r.Quantity})
}

// decodeQuantity flattens string | number | null into quantity text.
func decodeQuantity(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	return ""
}

// Menu is the persisted entity wrapping a Document.
type Menu struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	OrgID     string    `json:"org_id"`
	Title     string    `json:"title"`
	Document  *Document `json:"document"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
