// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
)

// ScalingService defines the use cases around quantity parsing and
// serving-based recipe scaling. This is the primary port the HTTP handlers
// and other driving adapters use.
type ScalingService interface {
	// ParseQuantity inspects a single ingredient line. It always succeeds;
	// lines without a leading quantity report a nil magnitude.
	ParseQuantity(ctx context.Context, line string) ParsedQuantityDTO

	// ScaleIngredients scales free-text ingredient lines by an explicit
	// factor. Fails when the factor is non-positive or non-finite.
	ScaleIngredients(ctx context.Context, lines []string, factor float64) ([]string, error)

	// ScaleRecipe scales a recipe's ingredient lines to a requested
	// serving count, deriving the factor from the recipe's base servings.
	ScaleRecipe(ctx context.Context, cmd ScaleRecipeCommand) (*ScaledRecipeDTO, error)

	// ImportRecipe decodes a raw generative-model response into a recipe,
	// optionally scaling it to a requested serving count in the same pass.
	ImportRecipe(ctx context.Context, cmd ImportRecipeCommand) (*RecipeDTO, error)
}

// Command objects for operations

// ScaleRecipeCommand contains a recipe definition and the serving count to
// scale it to.
type ScaleRecipeCommand struct {
	Title             string
	Description       string
	Ingredients       []string
	Instructions      []string
	BaseServings      int
	RequestedServings int
}

// ImportRecipeCommand carries a raw model response to decode.
type ImportRecipeCommand struct {
	Response          string
	Model             string
	RequestedServings int // 0 means keep the recipe's own serving count
}

// Response DTOs

// ParsedQuantityDTO is the wire form of a parse result. Magnitude is nil
// when no leading quantity was found.
type ParsedQuantityDTO struct {
	Magnitude *float64 `json:"magnitude"`
	Remainder string   `json:"remainder"`
}

// ScaledRecipeDTO is the result of scaling a recipe definition.
type ScaledRecipeDTO struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions,omitempty"`
	Servings     int      `json:"servings"`
	ScaleFactor  float64  `json:"scale_factor"`
}

// NutritionDTO is per-serving nutrition data.
type NutritionDTO struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
}

// RecipeDTO is the data transfer object for imported recipes.
type RecipeDTO struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Cuisine      string        `json:"cuisine,omitempty"`
	Ingredients  []string      `json:"ingredients"`
	Instructions []string      `json:"instructions"`
	Servings     int           `json:"servings,omitempty"`
	PrepTime     string        `json:"prep_time,omitempty"`
	Nutrition    *NutritionDTO `json:"nutrition,omitempty"`
	AIGenerated  bool          `json:"ai_generated"`
	AIModel      string        `json:"ai_model,omitempty"`
}
