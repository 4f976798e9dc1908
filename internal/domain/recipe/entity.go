// Package recipe contains the core domain logic for generated recipes.
// A recipe here is what the meal-planning agents hand back: free-text
// ingredient lines, instruction steps, a base serving count, and optional
// per-serving nutrition. Ingredient lines are deliberately kept as opaque
// text; the quantity package is the only component that interprets them.
package recipe

import (
	"time"

	"github.com/google/uuid"

	"github.com/pantrypilot/v1/internal/domain/quantity"
)

// Recipe represents a single recipe aggregate.
type Recipe struct {
	id          uuid.UUID
	title       string
	description string
	cuisine     string

	// Free-text ingredient lines, e.g. "1/2 cup flour" or "salt to taste".
	ingredients  []string
	instructions []string

	// servings is the base serving count the listed quantities were
	// written for. Zero means the source never declared one.
	servings  int
	prepTime  string
	nutrition *NutritionInfo

	// Provenance of generated recipes.
	aiGenerated bool
	aiModel     string

	createdAt time.Time
	updatedAt time.Time
}

// NewRecipe creates a new Recipe with validation.
func NewRecipe(title, description string) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Recipe{
		id:          uuid.New(),
		title:       title,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// Cuisine returns the recipe's cuisine label
func (r *Recipe) Cuisine() string {
	return r.cuisine
}

// Ingredients returns the recipe's ingredient lines
func (r *Recipe) Ingredients() []string {
	return r.ingredients
}

// Instructions returns the recipe's instruction steps
func (r *Recipe) Instructions() []string {
	return r.instructions
}

// Servings returns the base serving count, zero if unknown
func (r *Recipe) Servings() int {
	return r.servings
}

// PrepTime returns the free-text preparation time, e.g. "30 minutes"
func (r *Recipe) PrepTime() string {
	return r.prepTime
}

// Nutrition returns the per-serving nutrition information, if any
func (r *Recipe) Nutrition() *NutritionInfo {
	return r.nutrition
}

// IsAIGenerated returns whether the recipe was AI generated
func (r *Recipe) IsAIGenerated() bool {
	return r.aiGenerated
}

// AIModel returns the model that generated the recipe
func (r *Recipe) AIModel() string {
	return r.aiModel
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last updated
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetCuisine sets the cuisine label.
func (r *Recipe) SetCuisine(cuisine string) {
	r.cuisine = cuisine
	r.updatedAt = time.Now()
}

// SetPrepTime sets the free-text preparation time.
func (r *Recipe) SetPrepTime(prepTime string) {
	r.prepTime = prepTime
	r.updatedAt = time.Now()
}

// SetNutrition attaches per-serving nutrition information.
func (r *Recipe) SetNutrition(n *NutritionInfo) {
	r.nutrition = n
	r.updatedAt = time.Now()
}

// SetProvenance records that the recipe came from a generative model.
func (r *Recipe) SetProvenance(model string) {
	r.aiGenerated = true
	r.aiModel = model
	r.updatedAt = time.Now()
}

// SetServings sets the base serving count with validation.
func (r *Recipe) SetServings(servings int) error {
	if servings <= 0 {
		return ErrInvalidServings
	}
	r.servings = servings
	r.updatedAt = time.Now()
	return nil
}

// AddIngredient appends a free-text ingredient line.
func (r *Recipe) AddIngredient(line string) error {
	if line == "" {
		return ErrEmptyIngredient
	}
	r.ingredients = append(r.ingredients, line)
	r.updatedAt = time.Now()
	return nil
}

// AddInstruction appends an instruction step.
func (r *Recipe) AddInstruction(step string) error {
	if step == "" {
		return ErrEmptyInstruction
	}
	r.instructions = append(r.instructions, step)
	r.updatedAt = time.Now()
	return nil
}

// ScaledIngredients renders the ingredient lines scaled to the requested
// serving count. The recipe must carry a base serving count; the requested
// count must be positive. Lines without a detectable quantity come back
// unchanged, and per-serving nutrition needs no adjustment.
func (r *Recipe) ScaledIngredients(requestedServings int) ([]string, error) {
	if requestedServings <= 0 {
		return nil, ErrInvalidServings
	}
	if r.servings <= 0 {
		return nil, ErrBaseServingsUnknown
	}

	factor := float64(requestedServings) / float64(r.servings)
	return quantity.ScaleAll(r.ingredients, factor)
}

// validateTitle validates recipe title
func validateTitle(title string) error {
	if len(title) < 3 {
		return ErrTitleTooShort
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}

// validateDescription validates recipe description
func validateDescription(description string) error {
	if len(description) > 2000 {
		return ErrDescriptionTooLong
	}
	return nil
}
