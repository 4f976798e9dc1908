package scaling

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrypilot/v1/internal/infrastructure/monitoring"
	"github.com/pantrypilot/v1/internal/ports/inbound"
	"github.com/pantrypilot/v1/pkg/errors"
)

func newTestService() inbound.ScalingService {
	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	return NewService(metrics, zap.NewNop())
}

func TestParseQuantity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("WithQuantity_ShouldReportMagnitude", func(t *testing.T) {
		dto := svc.ParseQuantity(ctx, "1/2 cup flour")

		require.NotNil(t, dto.Magnitude)
		assert.InDelta(t, 0.5, *dto.Magnitude, 1e-9)
		assert.Equal(t, "cup flour", dto.Remainder)
	})

	t.Run("WithoutQuantity_ShouldReportNilMagnitude", func(t *testing.T) {
		dto := svc.ParseQuantity(ctx, "salt to taste")

		assert.Nil(t, dto.Magnitude)
		assert.Equal(t, "salt to taste", dto.Remainder)
	})
}

func TestScaleIngredients(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("ValidFactor_ShouldScale", func(t *testing.T) {
		scaled, err := svc.ScaleIngredients(ctx, []string{"2 eggs", "salt to taste"}, 1.5)

		require.NoError(t, err)
		assert.Equal(t, []string{"3 eggs", "salt to taste"}, scaled)
	})

	t.Run("InvalidFactor_ShouldReturnAppError", func(t *testing.T) {
		scaled, err := svc.ScaleIngredients(ctx, []string{"2 eggs"}, 0)

		assert.Nil(t, scaled)
		assert.True(t, errors.Is(err, errors.CodeInvalidScaleFactor))
	})
}

func TestScaleRecipe(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	validCmd := func() inbound.ScaleRecipeCommand {
		return inbound.ScaleRecipeCommand{
			Title:             "Veggie Omelette",
			Ingredients:       []string{"2 eggs", "1/2 cup milk", "salt to taste"},
			Instructions:      []string{"Whisk", "Fry"},
			BaseServings:      2,
			RequestedServings: 4,
		}
	}

	t.Run("ValidCommand_ShouldScaleAndReportFactor", func(t *testing.T) {
		dto, err := svc.ScaleRecipe(ctx, validCmd())

		require.NoError(t, err)
		assert.Equal(t, []string{"4 eggs", "1 cup milk", "salt to taste"}, dto.Ingredients)
		assert.Equal(t, 4, dto.Servings)
		assert.InDelta(t, 2.0, dto.ScaleFactor, 1e-9)
		assert.Equal(t, []string{"Whisk", "Fry"}, dto.Instructions)
	})

	t.Run("NoBaseServings_ShouldReturnNotScalable", func(t *testing.T) {
		cmd := validCmd()
		cmd.BaseServings = 0

		dto, err := svc.ScaleRecipe(ctx, cmd)

		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodeRecipeNotScalable))
	})

	t.Run("InvalidRequestedServings_ShouldReturnValidationError", func(t *testing.T) {
		cmd := validCmd()
		cmd.RequestedServings = 0

		dto, err := svc.ScaleRecipe(ctx, cmd)

		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodeValidationFailed))
	})

	t.Run("InvalidTitle_ShouldReturnValidationError", func(t *testing.T) {
		cmd := validCmd()
		cmd.Title = "ab"

		dto, err := svc.ScaleRecipe(ctx, cmd)

		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodeValidationFailed))
	})
}

func TestImportRecipe(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	const response = `{"success": true, "recipe": {
		"name": "Masala Omelette",
		"servings": 2,
		"calories": 320,
		"protein_g": 18,
		"ingredients": ["4 eggs", "1/2 cup chopped onion", "salt to taste"],
		"instructions": ["Whisk the eggs", "Fry until set"]
	}}`

	t.Run("WithoutRequestedServings_ShouldKeepOriginal", func(t *testing.T) {
		dto, err := svc.ImportRecipe(ctx, inbound.ImportRecipeCommand{
			Response: response,
			Model:    "gemini-2.5-flash",
		})

		require.NoError(t, err)
		assert.Equal(t, "Masala Omelette", dto.Title)
		assert.Equal(t, 2, dto.Servings)
		assert.Equal(t, []string{"4 eggs", "1/2 cup chopped onion", "salt to taste"}, dto.Ingredients)
		assert.True(t, dto.AIGenerated)
		require.NotNil(t, dto.Nutrition)
		assert.Equal(t, 320, dto.Nutrition.Calories)
	})

	t.Run("WithRequestedServings_ShouldScaleIngredients", func(t *testing.T) {
		dto, err := svc.ImportRecipe(ctx, inbound.ImportRecipeCommand{
			Response:          response,
			RequestedServings: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, dto.Servings)
		assert.Equal(t, []string{"2 eggs", "1/4 cup chopped onion", "salt to taste"}, dto.Ingredients)
		// Nutrition is per serving and must not change with scaling.
		require.NotNil(t, dto.Nutrition)
		assert.Equal(t, 320, dto.Nutrition.Calories)
	})

	t.Run("UndecodablePayload_ShouldReturnDecodeError", func(t *testing.T) {
		dto, err := svc.ImportRecipe(ctx, inbound.ImportRecipeCommand{
			Response: "no recipe here",
		})

		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodePayloadDecodeFailed))
	})

	t.Run("ScalingWithoutBaseServings_ShouldReturnNotScalable", func(t *testing.T) {
		dto, err := svc.ImportRecipe(ctx, inbound.ImportRecipeCommand{
			Response:          `{"name": "Mystery Stew", "ingredients": ["2 carrots"]}`,
			RequestedServings: 4,
		})

		assert.Nil(t, dto)
		assert.True(t, errors.Is(err, errors.CodeRecipeNotScalable))
	})
}
