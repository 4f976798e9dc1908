package quantity

import (
	"errors"
	"math"
)

// ErrInvalidScaleFactor reports a caller contract violation: scale factors
// must be positive and finite. Clamping instead would silently produce
// negative or infinite quantities.
var ErrInvalidScaleFactor = errors.New("scale factor must be positive and finite")

// Scale multiplies the leading quantity of an ingredient line by factor and
// re-renders the line. Lines without a detectable quantity are returned
// unchanged, and factor 1 is an identity fast path so unscaled renders
// never drift from their source text.
func Scale(line string, factor float64) (string, error) {
	if err := ValidateFactor(factor); err != nil {
		return "", err
	}
	if factor == 1 {
		return line, nil
	}

	parsed := Parse(line)
	if !parsed.Found {
		return line, nil
	}

	return Format(parsed.Magnitude*factor) + " " + parsed.Remainder, nil
}

// ScaleAll scales every line with the same factor. The factor is validated
// once up front so a bad factor cannot leave a half-scaled list behind.
func ScaleAll(lines []string, factor float64) ([]string, error) {
	if err := ValidateFactor(factor); err != nil {
		return nil, err
	}

	scaled := make([]string, len(lines))
	for i, line := range lines {
		out, err := Scale(line, factor)
		if err != nil {
			return nil, err
		}
		scaled[i] = out
	}
	return scaled, nil
}

// ValidateFactor checks the scale factor contract shared by Scale and
// ScaleAll: positive and finite.
func ValidateFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return ErrInvalidScaleFactor
	}
	return nil
}
