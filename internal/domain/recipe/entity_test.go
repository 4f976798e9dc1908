package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

// TestRecipeCreation tests recipe creation scenarios
func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		recipe, err := NewRecipe("Spaghetti Carbonara", "A classic Italian pasta dish")

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), recipe)

		assert.Equal(suite.T(), "Spaghetti Carbonara", recipe.Title())
		assert.NotEqual(suite.T(), uuid.Nil, recipe.ID())
		assert.NotZero(suite.T(), recipe.CreatedAt())
		assert.Zero(suite.T(), recipe.Servings())
		assert.False(suite.T(), recipe.IsAIGenerated())
	})

	suite.Run("TitleTooShort_ShouldReturnError", func() {
		recipe, err := NewRecipe("AB", "Valid description")

		assert.Nil(suite.T(), recipe)
		assert.Equal(suite.T(), ErrTitleTooShort, err)
	})

	suite.Run("TitleTooLong_ShouldReturnError", func() {
		recipe, err := NewRecipe(string(make([]byte, 201)), "Valid description")

		assert.Nil(suite.T(), recipe)
		assert.Equal(suite.T(), ErrTitleTooLong, err)
	})

	suite.Run("DescriptionTooLong_ShouldReturnError", func() {
		recipe, err := NewRecipe("Valid Title", string(make([]byte, 2001)))

		assert.Nil(suite.T(), recipe)
		assert.Equal(suite.T(), ErrDescriptionTooLong, err)
	})
}

// TestRecipeContents tests ingredient and instruction management
func (suite *RecipeTestSuite) TestRecipeContents() {
	suite.Run("AddIngredient_ShouldAppend", func() {
		recipe, _ := NewRecipe("Test Recipe", "Description")

		require.NoError(suite.T(), recipe.AddIngredient("2 eggs"))
		require.NoError(suite.T(), recipe.AddIngredient("salt to taste"))

		assert.Equal(suite.T(), []string{"2 eggs", "salt to taste"}, recipe.Ingredients())
	})

	suite.Run("AddEmptyIngredient_ShouldReturnError", func() {
		recipe, _ := NewRecipe("Test Recipe", "Description")

		assert.Equal(suite.T(), ErrEmptyIngredient, recipe.AddIngredient(""))
	})

	suite.Run("AddInstruction_ShouldAppend", func() {
		recipe, _ := NewRecipe("Test Recipe", "Description")

		require.NoError(suite.T(), recipe.AddInstruction("Boil water in a large pot"))

		assert.Len(suite.T(), recipe.Instructions(), 1)
	})

	suite.Run("AddEmptyInstruction_ShouldReturnError", func() {
		recipe, _ := NewRecipe("Test Recipe", "Description")

		assert.Equal(suite.T(), ErrEmptyInstruction, recipe.AddInstruction(""))
	})

	suite.Run("SetServings_Invalid_ShouldReturnError", func() {
		recipe, _ := NewRecipe("Test Recipe", "Description")

		assert.Equal(suite.T(), ErrInvalidServings, recipe.SetServings(0))
		assert.Equal(suite.T(), ErrInvalidServings, recipe.SetServings(-2))
	})
}

// TestRecipeScaling tests serving-based ingredient scaling
func (suite *RecipeTestSuite) TestRecipeScaling() {
	newScalable := func() *Recipe {
		recipe, err := NewRecipe("Veggie Omelette", "Quick breakfast")
		require.NoError(suite.T(), err)
		require.NoError(suite.T(), recipe.AddIngredient("2 eggs"))
		require.NoError(suite.T(), recipe.AddIngredient("1/2 cup milk"))
		require.NoError(suite.T(), recipe.AddIngredient("salt to taste"))
		require.NoError(suite.T(), recipe.SetServings(2))
		return recipe
	}

	suite.Run("ScaleUp_ShouldScaleEachLine", func() {
		recipe := newScalable()

		scaled, err := recipe.ScaledIngredients(4)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), []string{"4 eggs", "1 cup milk", "salt to taste"}, scaled)
	})

	suite.Run("ScaleToBaseServings_ShouldReturnLinesUnchanged", func() {
		recipe := newScalable()

		scaled, err := recipe.ScaledIngredients(2)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), recipe.Ingredients(), scaled)
	})

	suite.Run("ScaleDown_ShouldPreferFractions", func() {
		recipe := newScalable()

		scaled, err := recipe.ScaledIngredients(1)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), []string{"1 eggs", "1/4 cup milk", "salt to taste"}, scaled)
	})

	suite.Run("NoBaseServings_ShouldReturnError", func() {
		recipe, _ := NewRecipe("Mystery Stew", "No serving count declared")
		_ = recipe.AddIngredient("2 carrots")

		scaled, err := recipe.ScaledIngredients(4)

		assert.Nil(suite.T(), scaled)
		assert.Equal(suite.T(), ErrBaseServingsUnknown, err)
	})

	suite.Run("InvalidRequestedServings_ShouldReturnError", func() {
		recipe := newScalable()

		scaled, err := recipe.ScaledIngredients(0)

		assert.Nil(suite.T(), scaled)
		assert.Equal(suite.T(), ErrInvalidServings, err)
	})
}

// TestDetectedIngredientLine tests detection-to-line rendering
func (suite *RecipeTestSuite) TestDetectedIngredientLine() {
	suite.Run("WithQuantity_ShouldPrefixQuantity", func() {
		d := DetectedIngredient{Name: "chicken breast", Quantity: "2 lb", Condition: "fresh"}

		assert.Equal(suite.T(), "2 lb chicken breast", d.Line())
	})

	suite.Run("WithoutQuantity_ShouldReturnName", func() {
		d := DetectedIngredient{Name: "milk"}

		assert.Equal(suite.T(), "milk", d.Line())
	})
}

// TestRecipeTestSuite runs the recipe test suite
func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
