package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pantrypilot/v1/internal/ports/inbound"
	"github.com/pantrypilot/v1/pkg/errors"
)

// ScalingAPIHandlers handles quantity and recipe scaling requests
type ScalingAPIHandlers struct {
	scalingService inbound.ScalingService
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewScalingAPIHandlers creates a new scaling API handlers instance
func NewScalingAPIHandlers(scalingService inbound.ScalingService, logger *zap.Logger) *ScalingAPIHandlers {
	return &ScalingAPIHandlers{
		scalingService: scalingService,
		validate:       validator.New(),
		logger:         logger,
	}
}

// ParseQuantityRequest represents a single-line parse request
type ParseQuantityRequest struct {
	Line string `json:"line" validate:"required"`
}

// ScaleIngredientsRequest represents a factor-based scaling request
type ScaleIngredientsRequest struct {
	Lines []string `json:"lines" validate:"required,min=1"`
	// Factor is validated by the domain so a zero or negative value is
	// reported as INVALID_SCALE_FACTOR, not a generic validation failure.
	Factor float64 `json:"factor"`
}

// ScaleRecipeRequest represents a serving-based recipe scaling request
type ScaleRecipeRequest struct {
	Title             string   `json:"title" validate:"required"`
	Description       string   `json:"description"`
	Ingredients       []string `json:"ingredients" validate:"required,min=1"`
	Instructions      []string `json:"instructions"`
	BaseServings      int      `json:"base_servings"`
	RequestedServings int      `json:"requested_servings" validate:"required"`
}

// ImportRecipeRequest represents a model-response import request
type ImportRecipeRequest struct {
	Response          string `json:"response" validate:"required"`
	Model             string `json:"model"`
	RequestedServings int    `json:"requested_servings"`
}

// ParseQuantity handles POST /api/v1/quantities/parse
func (h *ScalingAPIHandlers) ParseQuantity(w http.ResponseWriter, r *http.Request) {
	var req ParseQuantityRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dto := h.scalingService.ParseQuantity(r.Context(), req.Line)

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// ScaleIngredients handles POST /api/v1/ingredients/scale
func (h *ScalingAPIHandlers) ScaleIngredients(w http.ResponseWriter, r *http.Request) {
	var req ScaleIngredientsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	scaled, err := h.scalingService.ScaleIngredients(r.Context(), req.Lines, req.Factor)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]interface{}{"lines": scaled},
	})
}

// ScaleRecipe handles POST /api/v1/recipes/scale
func (h *ScalingAPIHandlers) ScaleRecipe(w http.ResponseWriter, r *http.Request) {
	var req ScaleRecipeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dto, err := h.scalingService.ScaleRecipe(r.Context(), inbound.ScaleRecipeCommand{
		Title:             req.Title,
		Description:       req.Description,
		Ingredients:       req.Ingredients,
		Instructions:      req.Instructions,
		BaseServings:      req.BaseServings,
		RequestedServings: req.RequestedServings,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Recipe scaled successfully",
	})
}

// ImportRecipe handles POST /api/v1/recipes/import
func (h *ScalingAPIHandlers) ImportRecipe(w http.ResponseWriter, r *http.Request) {
	var req ImportRecipeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dto, err := h.scalingService.ImportRecipe(r.Context(), inbound.ImportRecipeCommand{
		Response:          req.Response,
		Model:             req.Model,
		RequestedServings: req.RequestedServings,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Recipe imported successfully",
	})
}

// decodeAndValidate decodes the JSON body into dst and validates it,
// writing the error response itself when either step fails.
func (h *ScalingAPIHandlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, h.logger, errors.NewBadRequestError("Invalid JSON payload").WithCause(err))
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		writeError(w, r, h.logger, errors.NewValidationError(err.Error()).WithCause(err))
		return false
	}

	return true
}
