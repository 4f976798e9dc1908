package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrTitleTooShort      = errors.New("recipe title must be at least 3 characters")
	ErrTitleTooLong       = errors.New("recipe title must not exceed 200 characters")
	ErrDescriptionTooLong = errors.New("recipe description must not exceed 2000 characters")
	ErrEmptyIngredient    = errors.New("ingredient line must not be empty")
	ErrEmptyInstruction   = errors.New("instruction step must not be empty")
	ErrInvalidServings    = errors.New("servings must be greater than 0")

	// Scaling errors
	ErrBaseServingsUnknown = errors.New("recipe has no base serving count to scale from")
)
