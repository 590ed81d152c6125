package grocery

import (
	"strings"
	"unicode"
)

// AggregatedItem is one line of the final shopping list.
type AggregatedItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// group accumulates every parsed occurrence of one normalized name.
type group struct {
	name       string
	quantities []ParsedQuantity
}

// BuildShoppingList runs the whole pipeline: extract, parse, group,
// sum, format. Pure and synchronous; safe to call from any number of
// request handlers at once.
func BuildShoppingList(entries []RawEntry) []AggregatedItem {
	byKey := make(map[string]*group)
	var order []*group

	for _, entry := range entries {
		name, parsed := parseEntry(entry)
		key := normalizeName(name)
		if key == "" {
			continue
		}

		g, ok := byKey[key]
		if !ok {
			g = &group{name: key}
			byKey[key] = g
			order = append(order, g)
		}
		g.quantities = append(g.quantities, parsed)
	}

	items := make([]AggregatedItem, 0, len(order))
	for _, g := range order {
		unit, total := reconcile(g.quantities)
		items = append(items, AggregatedItem{
			Name:     titleCase(g.name),
			Quantity: FormatQuantity(total, unit),
		})
	}
	return items
}

// parseEntry resolves one raw entry into (name, parsed quantity).
// When the quantity text is empty the amount may be embedded in the
// name itself ("2 cups flour"); the leftover descriptor then becomes
// the name.
func parseEntry(entry RawEntry) (string, ParsedQuantity) {
	if entry.Quantity == "" {
		parsed, rest := parseText(entry.Name, entry.Name)
		if rest != "" {
			return rest, parsed
		}
		return entry.Name, parsed
	}
	return entry.Name, ParseQuantity(entry.Quantity, entry.Name)
}

// reconcile picks the representative unit for a group and sums the
// amounts recorded under it. The unit is the mode of observed units
// with ties broken by first observation. Amounts under any other unit
// are dropped from the total on purpose: converting between units
// (cloves to bulbs, tsp to tbsp) is not something this layer does.
// A group where nothing was quantified returns a nil total.
func reconcile(quantities []ParsedQuantity) (string, *float64) {
	counts := make(map[string]int)
	var seen []string

	for _, q := range quantities {
		if counts[q.Unit] == 0 {
			seen = append(seen, q.Unit)
		}
		counts[q.Unit]++
	}

	unit := UnitPiece
	best := 0
	for _, u := range seen {
		if counts[u] > best {
			best = counts[u]
			unit = u
		}
	}

	var total *float64
	for _, q := range quantities {
		if q.Unit != unit || q.Amount == nil {
			continue
		}
		if total == nil {
			v := *q.Amount
			total = &v
		} else {
			*total += *q.Amount
		}
	}

	return unit, total
}

// normalizeName derives the grouping key: lowercased, colon-free,
// whitespace collapsed.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Trim(name, ": ")
	return strings.Join(strings.Fields(name), " ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
