package recipe

import (
	"context"
	"cookbook/domain"
	"cookbook/entities"
	"cookbook/pkg/category"
	"cookbook/pkg/ingredient"

	"go.uber.org/zap"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (uint, error)
		UpdateRecipe(ctx context.Context, recipeID uint, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, recipeID uint) error
		GetRecipeByID(ctx context.Context, recipeID uint) (domain.RecipeDetailResponse, error)
		SearchRecipeSummaries(ctx context.Context, keyword string) ([]domain.RecipeSummaryResponse, error)
		GetAllRecipeSummaries(ctx context.Context) ([]domain.RecipeSummaryResponse, error)
	}

	recipeService struct {
		recipeRepository         RecipeRepository
		ingredientRepository     ingredient.IngredientRepository
		categoryRecipeRepository category.CategoryRecipeRepository
		log                      *zap.Logger
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	categoryRecipeRepository category.CategoryRecipeRepository,
	log *zap.Logger,
) RecipeService {
	return &recipeService{
		recipeRepository:         recipeRepository,
		ingredientRepository:     ingredientRepository,
		categoryRecipeRepository: categoryRecipeRepository,
		log:                      log,
	}
}

// CreateRecipe inserts the recipe row, then its ingredients in list order.
// The first failing ingredient aborts the operation; earlier inserts are not
// rolled back.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (uint, error) {
	recipeID, err := s.recipeRepository.CreateRecipe(ctx, &entities.Recipe{
		Title:       req.Title,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Instruction: req.Instruction,
		ImgAddr:     req.ImgAddr,
		Serve:       req.Serve,
	})
	if err != nil {
		return 0, err
	}

	for _, ing := range req.Ingredients {
		err := s.ingredientRepository.AddIngredient(ctx, &entities.Ingredient{
			RecipeID:         recipeID,
			IngredientName:   ing.Name,
			IngredientAmount: ing.Amount,
			IngredientUnit:   ing.Unit,
		})
		if err != nil {
			s.log.Warn("recipe created but ingredient insert failed",
				zap.Uint("recipe_id", recipeID),
				zap.String("name", ing.Name),
				zap.Error(err))
			return 0, err
		}
	}

	return recipeID, nil
}

// UpdateRecipe applies the ingredient diff, then the scalar fields. Deletions
// are best effort: a failed delete is logged and the loop continues. The
// first failing insert or update aborts the operation with prior steps
// applied.
func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID uint, req domain.UpdateRecipeRequest) error {
	for _, pairID := range req.DeletedPairIDs {
		if err := s.ingredientRepository.DeleteIngredient(ctx, pairID); err != nil {
			s.log.Warn("failed to delete ingredient during recipe update",
				zap.Uint("recipe_id", recipeID),
				zap.Uint("pair_id", pairID),
				zap.Error(err))
		}
	}

	for _, ing := range req.Ingredients {
		row := &entities.Ingredient{
			PairID:           ing.PairID,
			RecipeID:         recipeID,
			IngredientName:   ing.Name,
			IngredientAmount: ing.Amount,
			IngredientUnit:   ing.Unit,
		}
		if ing.PairID == 0 {
			if err := s.ingredientRepository.AddIngredient(ctx, row); err != nil {
				return err
			}
		} else {
			if err := s.ingredientRepository.UpdateIngredient(ctx, row); err != nil {
				return err
			}
		}
	}

	return s.recipeRepository.UpdateRecipe(ctx, &entities.Recipe{
		RecipeID:    recipeID,
		Title:       req.Title,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Instruction: req.Instruction,
		ImgAddr:     req.ImgAddr,
		Serve:       req.Serve,
	})
}

// DeleteRecipe removes the recipe's category associations and ingredients,
// then the recipe row itself. A recipe with no ingredients or associations
// deletes cleanly.
func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID uint) error {
	if err := s.categoryRecipeRepository.ClearCategoriesForRecipe(ctx, recipeID); err != nil {
		return err
	}
	if err := s.ingredientRepository.DeleteIngredientsByRecipeID(ctx, recipeID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID uint) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	ingredients, err := s.ingredientRepository.GetIngredientsByRecipeID(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	res := domain.RecipeDetailResponse{
		RecipeID:    recipe.RecipeID,
		Title:       recipe.Title,
		PrepTime:    recipe.PrepTime,
		CookTime:    recipe.CookTime,
		TotalTime:   recipe.TotalTime(),
		Instruction: recipe.Instruction,
		ImgAddr:     recipe.ImgAddr,
		Serve:       recipe.Serve,
		Ingredients: make([]domain.IngredientResponse, 0, len(ingredients)),
	}
	for _, ing := range ingredients {
		res.Ingredients = append(res.Ingredients, domain.IngredientResponse{
			PairID: ing.PairID,
			Name:   ing.IngredientName,
			Amount: ing.IngredientAmount,
			Unit:   ing.IngredientUnit,
		})
	}
	return res, nil
}

func (s *recipeService) SearchRecipeSummaries(ctx context.Context, keyword string) ([]domain.RecipeSummaryResponse, error) {
	recipes, err := s.recipeRepository.GetRecipeSummariesByTitle(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return toSummaryResponses(recipes), nil
}

func (s *recipeService) GetAllRecipeSummaries(ctx context.Context) ([]domain.RecipeSummaryResponse, error) {
	recipes, err := s.recipeRepository.GetAllRecipeSummaries(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaryResponses(recipes), nil
}

func toSummaryResponses(recipes []*entities.Recipe) []domain.RecipeSummaryResponse {
	responses := make([]domain.RecipeSummaryResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, domain.RecipeSummaryResponse{
			RecipeID: recipe.RecipeID,
			Title:    recipe.Title,
			ImgAddr:  recipe.ImgAddr,
		})
	}
	return responses
}
