package grocery

import (
	"math"
	"strconv"
	"strings"
)

// unitPlurals and unitSingulars re-normalize unit text at display
// time, in case a singular form survived parsing. Units that read the
// same either way (oz, g, tsp...) are absent from both tables.
var unitPlurals = map[string]string{
	"cup":    "cups",
	"bottle": "bottles",
	"scoop":  "scoops",
	"pinch":  "pinches",
	"liter":  "liters",
	"slice":  "slices",
	"can":    "cans",
	"clove":  "cloves",
}

var unitSingulars = map[string]string{
	"cloves": "clove",
	"cans":   "can",
	"slices": "slice",
	"cups":   "cup",
}

// FormatQuantity renders the final quantity text for one aggregated
// item. A nil amount means the ingredient was never quantified: the
// list shows just the name, so this returns "". The generic "piece"
// unit is suppressed; "1 piece" is noise nobody wrote.
func FormatQuantity(amount *float64, unit string) string {
	if amount == nil {
		return ""
	}

	text := FormatAmount(*amount)
	if unit == UnitPiece || unit == "pieces" {
		return text
	}

	return text + " " + displayUnit(unit, *amount)
}

// FormatAmount humanizes a float:
//   - whole numbers drop the decimals ("3")
//   - a half below one becomes a vulgar fraction ("1/2")
//   - halves of one or more keep one decimal ("1.5")
//   - anything else rounds to two decimals, trimmed ("2.33")
func FormatAmount(v float64) string {
	// Round half away from zero: FormatFloat alone rounds 0.125 down.
	v = math.Round(v*100) / 100

	if isWhole(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	if isWhole(v * 2) {
		if v < 1 {
			return "1/2"
		}
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	text := strconv.FormatFloat(v, 'f', 2, 64)
	text = strings.TrimRight(text, "0")
	return strings.TrimRight(text, ".")
}

func isWhole(v float64) bool {
	return math.Abs(v-math.Round(v)) < 1e-9
}

// displayUnit picks the grammatical form for the amount.
func displayUnit(unit string, amount float64) string {
	if amount == 1 {
		if s, ok := unitSingulars[unit]; ok {
			return s
		}
		return unit
	}
	if p, ok := unitPlurals[unit]; ok {
		return p
	}
	return unit
}
