package grocery

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedQuantity is the structured form of one quantity string.
// Amount is nil only when no number was found and no unit default
// applied. Unit is always set; "piece" is the generic fallback.
type ParsedQuantity struct {
	Amount *float64
	Unit   string
}

// UnitPiece is the generic fallback unit for entries that carry no
// recognizable unit token. The formatter never prints it.
const UnitPiece = "piece"

var (
	leadingFraction = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)`)
	leadingNumber   = regexp.MustCompile(`^(\d+(?:\.\d+)?)`)
)

// unitAliases maps every accepted spelling to its canonical form.
// Canonical forms are what the aggregator groups on, so units that
// read better plural (cloves, cans, slices) canonicalize plural.
var unitAliases = map[string]string{
	"cup": "cup", "cups": "cup",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"fl oz": "fl oz",
	"g":     "g", "gram": "g", "grams": "g",
	"kg": "kg",
	"ml": "ml",
	"l":  "liter", "liter": "liter", "liters": "liter",
	"clove": "cloves", "cloves": "cloves",
	"pinch": "pinch", "pinches": "pinch",
	"can": "cans", "cans": "cans",
	"bottle": "bottle", "bottles": "bottle",
	"slice": "slices", "slices": "slices",
	"piece": "piece", "pieces": "piece",
	"scoop": "scoop", "scoops": "scoop",
}

// defaultRule assigns an amount to a quantity string that names a unit
// but no number ("cup parmesan cheese"). Rules are checked in order,
// most specific first; the flat per-unit table below is the fallback.
type defaultRule struct {
	unit         string
	nameContains string
	amount       float64
}

// Strong cheeses get a quarter cup: a full cup of parmesan or feta is
// not a realistic serving, while mild cheeses keep the generic 1 cup.
// Keyed by name, not by a blanket cheese rule.
var defaultRules = []defaultRule{
	{unit: "cup", nameContains: "parmesan", amount: 0.25},
	{unit: "cup", nameContains: "feta", amount: 0.25},
}

// unitDefaults is the fallback amount for any recognized unit with no
// explicit number.
var unitDefaults = map[string]float64{
	"cup": 1, "lb": 1, "tsp": 1, "tbsp": 1, "oz": 1, "fl oz": 1,
	"g": 1, "kg": 1, "ml": 1, "liter": 1, "cloves": 1, "pinch": 1,
	"cans": 1, "bottle": 1, "slices": 1, "piece": 1, "scoop": 1,
}

// ParseQuantity turns one raw quantity string into a ParsedQuantity.
// The ingredient name rides along for the name-keyed default rules.
// Unit text the vocabulary does not know ("2 bulbs") is kept verbatim
// when it follows an explicit number: it was written deliberately and
// deserves to show up in the list. Descriptor text with no number
// ("to taste") stays the generic piece. This never fails.
func ParseQuantity(raw, name string) ParsedQuantity {
	q, rest := parseText(raw, name)
	if q.Amount != nil && q.Unit == UnitPiece && rest != "" {
		q.Unit = rest
	}
	return q
}

// parseText does the real work and additionally returns whatever text
// followed the number and unit. For bare-string ingredients ("2 cups
// flour") that leftover is the ingredient name.
func parseText(raw, name string) (ParsedQuantity, string) {
	s := strings.TrimSpace(raw)

	var amount *float64

	if m := leadingFraction.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			v := num / den
			amount = &v
		}
		s = strings.TrimSpace(s[len(m[0]):])
	} else if m := leadingNumber.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		amount = &v
		s = strings.TrimSpace(s[len(m[0]):])
	}

	unit, unitFound, rest := matchUnit(s)

	if amount == nil && unitFound {
		amount = defaultAmount(unit, name+" "+raw)
	}

	return ParsedQuantity{Amount: amount, Unit: unit}, rest
}

// matchUnit reads the leading words of s and resolves them against the
// unit vocabulary, trying the two-word form ("fl oz") before the
// single word. Unrecognized text falls through to "piece" and is
// returned as leftover descriptor.
func matchUnit(s string) (string, bool, string) {
	words := alphaWords(s)
	if len(words) == 0 {
		return UnitPiece, false, ""
	}

	if len(words) >= 2 {
		if unit, ok := unitAliases[words[0]+" "+words[1]]; ok {
			return unit, true, strings.Join(words[2:], " ")
		}
	}

	if unit, ok := unitAliases[words[0]]; ok {
		return unit, true, strings.Join(words[1:], " ")
	}

	return UnitPiece, false, strings.Join(words, " ")
}

// defaultAmount resolves the no-number case: exception rules first,
// then the flat unit table.
func defaultAmount(unit, haystack string) *float64 {
	haystack = strings.ToLower(haystack)

	for _, rule := range defaultRules {
		if rule.unit == unit && strings.Contains(haystack, rule.nameContains) {
			v := rule.amount
			return &v
		}
	}

	if v, ok := unitDefaults[unit]; ok {
		return &v
	}
	return nil
}

// alphaWords lowercases s and splits it into words stripped of
// anything non-alphabetic ("oz." -> "oz").
func alphaWords(s string) []string {
	var words []string
	for _, field := range strings.Fields(strings.ToLower(s)) {
		var b strings.Builder
		for _, r := range field {
			if r >= 'a' && r <= 'z' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
	}
	return words
}
