package scale

import (
	"context"
	"cookbook/domain"
	"cookbook/pkg/ingredient"
	"cookbook/pkg/recipe"
	"math"
)

type (
	// ScaleService computes ingredient amounts for a requested serving count.
	// It is a pure read: same inputs, same outputs, no writes.
	ScaleService interface {
		Scale(ctx context.Context, recipeID uint, serve int) (domain.ScaleResponse, error)
	}

	scaleService struct {
		recipeRepository     recipe.RecipeRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewScaleService(recipeRepository recipe.RecipeRepository, ingredientRepository ingredient.IngredientRepository) ScaleService {
	return &scaleService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
	}
}

// Scale multiplies every stored amount by serve over the recipe's baseline
// serving count and rounds up to the next whole amount. A positive stored
// amount never scales below 1.
func (s *scaleService) Scale(ctx context.Context, recipeID uint, serve int) (domain.ScaleResponse, error) {
	if serve <= 0 {
		return domain.ScaleResponse{}, domain.ErrInvalidScaleServe
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.ScaleResponse{}, err
	}

	ingredients, err := s.ingredientRepository.GetIngredientsByRecipeID(ctx, recipeID)
	if err != nil {
		return domain.ScaleResponse{}, err
	}

	factor := float64(serve) / float64(rec.Serve)

	res := domain.ScaleResponse{
		RecipeID:    recipeID,
		Serve:       serve,
		Ingredients: make([]domain.ScaledIngredient, 0, len(ingredients)),
	}
	for _, ing := range ingredients {
		res.Ingredients = append(res.Ingredients, domain.ScaledIngredient{
			Name:   ing.IngredientName,
			Amount: int(math.Ceil(float64(ing.IngredientAmount) * factor)),
			Unit:   ing.IngredientUnit,
		})
	}
	return res, nil
}
