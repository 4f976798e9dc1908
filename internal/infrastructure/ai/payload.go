// Package ai decodes generative-model responses into domain recipes.
//
// The model endpoint itself is an external collaborator; this package only
// understands its response contract: a JSON recipe (or recipe list) with
// free-text ingredient lines, instruction steps, serving counts, and flat
// nutrition fields. Model output is loosely typed in practice, so decoding
// is tolerant: numbers arrive as strings, serving counts as "Unknown", and
// JSON wrapped in markdown code fences.
package ai

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/pantrypilot/v1/internal/domain/recipe"
)

// Decode errors
var (
	ErrEmptyResponse = errors.New("model response is empty")
	ErrNoRecipes     = errors.New("model response contains no recipes")
)

// RecipePayload mirrors the recipe JSON schema the model is prompted to
// return. Unknown fields are ignored.
type RecipePayload struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Cuisine      string      `json:"cuisine"`
	PrepTime     string      `json:"prep_time"`
	Servings     FlexibleInt `json:"servings"`
	Calories     FlexibleInt `json:"calories"`
	ProteinG     float64     `json:"protein_g"`
	CarbsG       float64     `json:"carbs_g"`
	FatG         float64     `json:"fat_g"`
	Ingredients  []string    `json:"ingredients"`
	Instructions []string    `json:"instructions"`
	MatchScore   FlexibleInt `json:"match_score"`
}

// envelope is the success/error wrapper the agent tools put around recipe
// data. Single-recipe and multi-recipe responses both occur.
type envelope struct {
	Success *bool           `json:"success"`
	Error   string          `json:"error"`
	Recipe  *RecipePayload  `json:"recipe"`
	Recipes []RecipePayload `json:"recipes"`
}

// FlexibleInt decodes an integer that the model may emit as a JSON number,
// a numeric string, or a non-numeric placeholder such as "Unknown" (which
// decodes to zero).
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexibleInt(v)
	return nil
}

// DecodeRecipeResponse extracts recipe payloads from a raw model response.
// It accepts the tool envelope ({"success": true, "recipe": {...}}), a
// recipe list, or a bare recipe object, with or without markdown fences.
func DecodeRecipeResponse(raw string) ([]RecipePayload, error) {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var env envelope
	if err := json.Unmarshal([]byte(cleaned), &env); err != nil {
		return nil, err
	}

	if env.Success != nil && !*env.Success {
		if env.Error != "" {
			return nil, errors.New(env.Error)
		}
		return nil, ErrNoRecipes
	}

	switch {
	case env.Recipe != nil:
		return []RecipePayload{*env.Recipe}, nil
	case len(env.Recipes) > 0:
		return env.Recipes, nil
	}

	// No envelope; try a bare recipe object.
	var bare RecipePayload
	if err := json.Unmarshal([]byte(cleaned), &bare); err != nil {
		return nil, err
	}
	if bare.Name == "" {
		return nil, ErrNoRecipes
	}
	return []RecipePayload{bare}, nil
}

// StripFences removes a surrounding markdown code fence from model output.
// Models regularly wrap JSON in ```json blocks despite being asked for raw
// JSON.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = text[idx+len("```json"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
		return strings.TrimSpace(text)
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		text = text[idx+len("```"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
		return strings.TrimSpace(text)
	}
	return text
}

// ToDomain converts a decoded payload into a recipe aggregate.
func ToDomain(p RecipePayload, model string) (*recipe.Recipe, error) {
	r, err := recipe.NewRecipe(p.Name, p.Description)
	if err != nil {
		return nil, err
	}

	r.SetCuisine(p.Cuisine)
	r.SetPrepTime(p.PrepTime)
	if model != "" {
		r.SetProvenance(model)
	}

	for _, line := range p.Ingredients {
		if line == "" {
			continue
		}
		if err := r.AddIngredient(line); err != nil {
			return nil, err
		}
	}
	for _, step := range p.Instructions {
		if step == "" {
			continue
		}
		if err := r.AddInstruction(step); err != nil {
			return nil, err
		}
	}

	if p.Servings > 0 {
		if err := r.SetServings(int(p.Servings)); err != nil {
			return nil, err
		}
	}

	if p.Calories > 0 || p.ProteinG > 0 || p.CarbsG > 0 || p.FatG > 0 {
		r.SetNutrition(&recipe.NutritionInfo{
			Calories: int(p.Calories),
			Protein:  p.ProteinG,
			Carbs:    p.CarbsG,
			Fat:      p.FatG,
		})
	}

	return r, nil
}
