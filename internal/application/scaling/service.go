// Package scaling provides the application layer for quantity parsing and
// serving-based recipe scaling. It implements the use cases defined in the
// inbound ports.
package scaling

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/pantrypilot/v1/internal/domain/quantity"
	"github.com/pantrypilot/v1/internal/domain/recipe"
	"github.com/pantrypilot/v1/internal/infrastructure/ai"
	"github.com/pantrypilot/v1/internal/infrastructure/monitoring"
	"github.com/pantrypilot/v1/internal/ports/inbound"
	"github.com/pantrypilot/v1/pkg/errors"
)

// Service implements the scaling use cases
type Service struct {
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewService creates a new scaling service
func NewService(metrics *monitoring.Metrics, logger *zap.Logger) inbound.ScalingService {
	return &Service{
		metrics: metrics,
		logger:  logger.Named("scaling-service"),
	}
}

// ParseQuantity inspects a single ingredient line.
func (s *Service) ParseQuantity(ctx context.Context, line string) inbound.ParsedQuantityDTO {
	parsed := quantity.Parse(line)
	s.metrics.RecordParse(parsed.Found)

	dto := inbound.ParsedQuantityDTO{Remainder: parsed.Remainder}
	if parsed.Found {
		magnitude := parsed.Magnitude
		dto.Magnitude = &magnitude
	}
	return dto
}

// ScaleIngredients scales free-text ingredient lines by an explicit factor.
func (s *Service) ScaleIngredients(ctx context.Context, lines []string, factor float64) ([]string, error) {
	scaled, err := quantity.ScaleAll(lines, factor)
	s.metrics.RecordScaleOperation("ingredients", err)
	if err != nil {
		if stderrors.Is(err, quantity.ErrInvalidScaleFactor) {
			return nil, errors.NewInvalidScaleFactorError(factor)
		}
		return nil, errors.Wrap(err, "failed to scale ingredients")
	}

	s.logger.Debug("Scaled ingredient lines",
		zap.Int("lines", len(lines)),
		zap.Float64("factor", factor),
	)
	return scaled, nil
}

// ScaleRecipe scales a recipe definition to a requested serving count.
func (s *Service) ScaleRecipe(ctx context.Context, cmd inbound.ScaleRecipeCommand) (*inbound.ScaledRecipeDTO, error) {
	entity, err := buildRecipe(cmd)
	if err != nil {
		s.metrics.RecordScaleOperation("recipe", err)
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	scaled, err := entity.ScaledIngredients(cmd.RequestedServings)
	s.metrics.RecordScaleOperation("recipe", err)
	if err != nil {
		switch {
		case stderrors.Is(err, recipe.ErrInvalidServings):
			return nil, errors.NewValidationError("requested servings must be greater than 0").WithCause(err)
		case stderrors.Is(err, recipe.ErrBaseServingsUnknown):
			return nil, errors.NewRecipeNotScalableError("recipe has no base serving count").WithCause(err)
		case stderrors.Is(err, quantity.ErrInvalidScaleFactor):
			return nil, errors.NewInvalidScaleFactorError(
				float64(cmd.RequestedServings) / float64(cmd.BaseServings))
		default:
			return nil, errors.Wrap(err, "failed to scale recipe")
		}
	}

	s.logger.Info("Scaled recipe",
		zap.String("title", cmd.Title),
		zap.Int("base_servings", cmd.BaseServings),
		zap.Int("requested_servings", cmd.RequestedServings),
	)

	return &inbound.ScaledRecipeDTO{
		Title:        cmd.Title,
		Description:  cmd.Description,
		Ingredients:  scaled,
		Instructions: cmd.Instructions,
		Servings:     cmd.RequestedServings,
		ScaleFactor:  float64(cmd.RequestedServings) / float64(cmd.BaseServings),
	}, nil
}

// ImportRecipe decodes a raw model response into a recipe DTO, optionally
// scaling it to a requested serving count.
func (s *Service) ImportRecipe(ctx context.Context, cmd inbound.ImportRecipeCommand) (*inbound.RecipeDTO, error) {
	payloads, err := ai.DecodeRecipeResponse(cmd.Response)
	if err != nil {
		s.logger.Warn("Failed to decode model response", zap.Error(err))
		return nil, errors.NewPayloadDecodeError(err)
	}

	entity, err := ai.ToDomain(payloads[0], cmd.Model)
	if err != nil {
		return nil, errors.NewPayloadDecodeError(err)
	}

	dto := entityToDTO(entity)

	if cmd.RequestedServings > 0 && cmd.RequestedServings != entity.Servings() {
		scaled, err := entity.ScaledIngredients(cmd.RequestedServings)
		s.metrics.RecordScaleOperation("import", err)
		if err != nil {
			if stderrors.Is(err, recipe.ErrBaseServingsUnknown) {
				return nil, errors.NewRecipeNotScalableError("imported recipe has no base serving count")
			}
			return nil, errors.Wrap(err, "failed to scale imported recipe")
		}
		dto.Ingredients = scaled
		dto.Servings = cmd.RequestedServings
	}

	s.metrics.RecordRecipeImport()
	s.logger.Info("Imported recipe from model response",
		zap.String("title", dto.Title),
		zap.String("model", cmd.Model),
	)
	return dto, nil
}

// buildRecipe assembles a domain recipe from a scale command.
func buildRecipe(cmd inbound.ScaleRecipeCommand) (*recipe.Recipe, error) {
	entity, err := recipe.NewRecipe(cmd.Title, cmd.Description)
	if err != nil {
		return nil, err
	}

	for _, line := range cmd.Ingredients {
		if err := entity.AddIngredient(line); err != nil {
			return nil, err
		}
	}
	for _, step := range cmd.Instructions {
		if err := entity.AddInstruction(step); err != nil {
			return nil, err
		}
	}

	if cmd.BaseServings > 0 {
		if err := entity.SetServings(cmd.BaseServings); err != nil {
			return nil, err
		}
	}
	return entity, nil
}

// entityToDTO converts a domain recipe to its transfer representation.
func entityToDTO(r *recipe.Recipe) *inbound.RecipeDTO {
	dto := &inbound.RecipeDTO{
		ID:           r.ID(),
		Title:        r.Title(),
		Description:  r.Description(),
		Cuisine:      r.Cuisine(),
		Ingredients:  r.Ingredients(),
		Instructions: r.Instructions(),
		Servings:     r.Servings(),
		PrepTime:     r.PrepTime(),
		AIGenerated:  r.IsAIGenerated(),
		AIModel:      r.AIModel(),
	}

	if n := r.Nutrition(); n != nil {
		dto.Nutrition = &inbound.NutritionDTO{
			Calories: n.Calories,
			Protein:  n.Protein,
			Carbs:    n.Carbs,
			Fat:      n.Fat,
		}
	}
	return dto
}
