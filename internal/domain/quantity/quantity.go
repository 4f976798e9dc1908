// Package quantity contains the core domain logic for ingredient quantity
// parsing, scaling, and formatting. Ingredient lines are untrusted free text
// produced upstream (vision extraction, receipt OCR, generated recipes), so
// every function in this package is total: input that cannot be interpreted
// is passed through untouched, never rejected.
package quantity

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Tolerances defining what "looks like a clean value" when formatting.
// These must stay in sync with the rendering the front-ends snapshot against.
const (
	// IntegerTolerance is the maximum distance from a whole number at which
	// a value is rendered as that whole number.
	IntegerTolerance = 0.05

	// FractionTolerance is the maximum distance from a common culinary
	// fraction at which the fractional part snaps to that fraction.
	FractionTolerance = 0.1
)

// ParsedQuantity is the result of parsing an ingredient line.
// When Found is false, Remainder carries the original input unchanged.
type ParsedQuantity struct {
	Magnitude float64
	Remainder string
	Found     bool
}

var (
	numberPattern   = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	fractionPattern = regexp.MustCompile(`^(\d+)/(\d+)$`)
	rangePattern    = regexp.MustCompile(`^(\d+(?:\.\d+)?)-(\d+(?:\.\d+)?)$`)
)

// Parse extracts a leading quantity token from an ingredient line.
//
// The quantity must be a single whitespace-delimited token at the start of
// the trimmed input, followed by at least one remainder token. Recognized
// forms are plain numbers ("2", "1.5"), simple fractions ("1/2"), and
// ranges ("1-2", "1.5-2.5") which are interpreted as their arithmetic mean.
//
// Lines with no recognizable quantity ("salt to taste") are a normal case,
// not an error: the result reports Found=false and preserves the input.
func Parse(line string) ParsedQuantity {
	notFound := ParsedQuantity{Remainder: line}

	trimmed := strings.TrimSpace(line)
	cut := strings.IndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		// A bare quantity with nothing to describe is not an ingredient.
		return notFound
	}
	token := trimmed[:cut]
	rest := strings.TrimSpace(trimmed[cut:])
	if rest == "" {
		return notFound
	}

	magnitude, ok := parseToken(token)
	if !ok {
		return notFound
	}

	return ParsedQuantity{Magnitude: magnitude, Remainder: rest, Found: true}
}

// parseToken interprets a single candidate quantity token.
func parseToken(token string) (float64, bool) {
	if numberPattern.MatchString(token) {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, false
		}
		return value, true
	}

	if m := fractionPattern.FindStringSubmatch(token); m != nil {
		numerator, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		denominator, err := strconv.ParseFloat(m[2], 64)
		if err != nil || denominator == 0 {
			// Zero denominators come straight from OCR noise. Treat the
			// token as descriptive text rather than propagating an error.
			return 0, false
		}
		return numerator / denominator, true
	}

	if m := rangePattern.FindStringSubmatch(token); m != nil {
		low, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		high, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		return (low + high) / 2, true
	}

	return 0, false
}
