package recipe

// NutritionInfo contains per-serving nutritional information as estimated
// by the upstream model. Values describe one serving regardless of how the
// ingredient quantities are later scaled.
type NutritionInfo struct {
	Calories int
	Protein  float64 // in grams
	Carbs    float64 // in grams
	Fat      float64 // in grams
}

// DetectedIngredient is an ingredient reported by the vision or receipt
// extraction layer: a name plus whatever quantity text was visible.
type DetectedIngredient struct {
	Name      string
	Quantity  string
	Condition string
}

// Line renders the detection as a single ingredient line suitable for the
// quantity parser, e.g. "2 lb chicken breast".
func (d DetectedIngredient) Line() string {
	if d.Quantity == "" {
		return d.Name
	}
	return d.Quantity + " " + d.Name
}
