package category

import (
	"context"
	"cookbook/domain"
	"cookbook/entities"
	"errors"

	"go.uber.org/zap"
)

// RecipeSummaryReader is the slice of the recipe repository the category
// service needs to assemble cross-reference views.
type RecipeSummaryReader interface {
	GetRecipeSummaryByID(ctx context.Context, recipeID uint) (*entities.Recipe, error)
}

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, name string) error
		UpdateCategory(ctx context.Context, categoryID uint, name string) error
		DeleteCategory(ctx context.Context, categoryID uint) error
		UpdateRecipeCategories(ctx context.Context, categoryIDs []uint, recipeID uint) error
		GetAllCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetCategoriesByRecipeID(ctx context.Context, recipeID uint) ([]domain.CategoryResponse, error)
		GetRecipeSummariesByCategoryID(ctx context.Context, categoryID uint) ([]domain.RecipeSummaryResponse, error)
	}

	categoryService struct {
		categoryRepository       CategoryRepository
		categoryRecipeRepository CategoryRecipeRepository
		recipeSummaries          RecipeSummaryReader
		log                      *zap.Logger
	}
)

func NewCategoryService(
	categoryRepository CategoryRepository,
	categoryRecipeRepository CategoryRecipeRepository,
	recipeSummaries RecipeSummaryReader,
	log *zap.Logger,
) CategoryService {
	return &categoryService{
		categoryRepository:       categoryRepository,
		categoryRecipeRepository: categoryRecipeRepository,
		recipeSummaries:          recipeSummaries,
		log:                      log,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) error {
	return s.categoryRepository.CreateCategory(ctx, name)
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID uint, name string) error {
	return s.categoryRepository.UpdateCategory(ctx, categoryID, name)
}

// DeleteCategory strips the category's recipe associations before deleting
// the category row. Deleting an unknown category reports
// domain.ErrCategoryNotFound.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID uint) error {
	if err := s.categoryRecipeRepository.ClearRecipesForCategory(ctx, categoryID); err != nil {
		return err
	}
	return s.categoryRepository.DeleteCategory(ctx, categoryID)
}

// UpdateRecipeCategories replaces the recipe's category set wholesale: the
// current set is cleared and the new one inserted, even when they overlap.
// When both sets are empty no store write happens at all.
func (s *categoryService) UpdateRecipeCategories(ctx context.Context, categoryIDs []uint, recipeID uint) error {
	currentIDs, err := s.categoryRecipeRepository.GetCategoryIDsByRecipeID(ctx, recipeID)
	if err != nil {
		return err
	}

	if len(currentIDs) == 0 && len(categoryIDs) == 0 {
		return nil
	}

	if len(currentIDs) > 0 {
		if err := s.categoryRecipeRepository.ClearCategoriesForRecipe(ctx, recipeID); err != nil {
			return err
		}
	}

	if len(categoryIDs) > 0 {
		if err := s.categoryRecipeRepository.AddToCategories(ctx, categoryIDs, recipeID); err != nil {
			return err
		}
	}

	return nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, domain.CategoryResponse{
			CategoryID: c.CategoryID,
			Name:       c.CategoryName,
		})
	}
	return responses, nil
}

func (s *categoryService) GetCategoriesByRecipeID(ctx context.Context, recipeID uint) ([]domain.CategoryResponse, error) {
	categoryIDs, err := s.categoryRecipeRepository.GetCategoryIDsByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepository.GetCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, domain.CategoryResponse{
			CategoryID: c.CategoryID,
			Name:       c.CategoryName,
		})
	}
	return responses, nil
}

// GetRecipeSummariesByCategoryID drops associations pointing at recipes that
// no longer exist instead of failing the whole view.
func (s *categoryService) GetRecipeSummariesByCategoryID(ctx context.Context, categoryID uint) ([]domain.RecipeSummaryResponse, error) {
	recipeIDs, err := s.categoryRecipeRepository.GetRecipeIDsByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RecipeSummaryResponse, 0, len(recipeIDs))
	for _, recipeID := range recipeIDs {
		recipe, err := s.recipeSummaries.GetRecipeSummaryByID(ctx, recipeID)
		if err != nil {
			if errors.Is(err, domain.ErrRecipeNotFound) {
				s.log.Warn("stale association, recipe missing",
					zap.Uint("category_id", categoryID),
					zap.Uint("recipe_id", recipeID))
				continue
			}
			return nil, err
		}
		responses = append(responses, domain.RecipeSummaryResponse{
			RecipeID: recipe.RecipeID,
			Title:    recipe.Title,
			ImgAddr:  recipe.ImgAddr,
		})
	}
	return responses, nil
}
