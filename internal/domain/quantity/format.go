package quantity

import (
	"math"
	"strconv"
	"strings"
)

// commonFraction pairs a culinary fraction with both of its renderings:
// the bare fraction used when there is no whole part, and the decimal
// suffix used when there is one.
type commonFraction struct {
	value    float64
	fraction string
	decimal  string
}

var commonFractions = []commonFraction{
	{0.25, "1/4", ".25"},
	{0.33, "1/3", ".33"},
	{0.5, "1/2", ".5"},
	{0.75, "3/4", ".75"},
}

// Format renders a non-negative quantity as a short human string,
// preferring familiar culinary fractions over raw decimals.
//
// Values within IntegerTolerance of a whole number render as that integer.
// Otherwise, a fractional part within FractionTolerance of a common
// fraction renders as "1/2"-style text when the whole part is zero, and as
// decimal notation ("1.5", not "1 1/2") when it is not. The decimal fallback
// for mixed numbers looks inconsistent but is kept for output parity with
// existing UI snapshots. Everything else renders to one decimal place.
func Format(value float64) string {
	rounded := math.Round(value)
	if math.Abs(value-rounded) <= IntegerTolerance {
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}

	whole := math.Floor(value)
	frac := value - whole
	if best, ok := nearestFraction(frac); ok {
		if whole == 0 {
			return best.fraction
		}
		return strconv.FormatFloat(whole, 'f', 0, 64) + best.decimal
	}

	return strings.TrimSuffix(strconv.FormatFloat(value, 'f', 1, 64), ".0")
}

// nearestFraction finds the closest common fraction within
// FractionTolerance of frac. Candidates overlap (1/4 and 1/3 are only 0.08
// apart), so proximity decides, not declaration order.
func nearestFraction(frac float64) (commonFraction, bool) {
	var best commonFraction
	bestDelta := math.Inf(1)
	for _, cf := range commonFractions {
		if delta := math.Abs(frac - cf.value); delta < bestDelta {
			best, bestDelta = cf, delta
		}
	}
	return best, bestDelta <= FractionTolerance
}
