package category

import (
	"context"
	"cookbook/entities"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	CategoryRecipeRepository interface {
		AddToCategories(ctx context.Context, categoryIDs []uint, recipeID uint) error
		ClearCategoriesForRecipe(ctx context.Context, recipeID uint) error
		ClearRecipesForCategory(ctx context.Context, categoryID uint) error
		GetRecipeIDsByCategoryID(ctx context.Context, categoryID uint) ([]uint, error)
		GetCategoryIDsByRecipeID(ctx context.Context, recipeID uint) ([]uint, error)
	}

	categoryRecipeRepository struct {
		db  *gorm.DB
		log *zap.Logger
	}
)

func NewCategoryRecipeRepository(db *gorm.DB, log *zap.Logger) CategoryRecipeRepository {
	return &categoryRecipeRepository{db: db, log: log}
}

// AddToCategories inserts one join row per category id in a single batch
// statement; a duplicate pair fails the whole batch via the composite
// primary key.
func (r *categoryRecipeRepository) AddToCategories(ctx context.Context, categoryIDs []uint, recipeID uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	rows := make([]entities.CategoryRecipe, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		rows = append(rows, entities.CategoryRecipe{CategoryID: categoryID, RecipeID: recipeID})
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		r.log.Error("error adding recipe to categories", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return err
	}
	return nil
}

// ClearCategoriesForRecipe succeeds whether or not the recipe had any
// associations.
func (r *categoryRecipeRepository) ClearCategoriesForRecipe(ctx context.Context, recipeID uint) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.CategoryRecipe{}).Error; err != nil {
		r.log.Error("error clearing categories for recipe", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return err
	}
	return nil
}

// ClearRecipesForCategory succeeds whether or not the category had any
// associations, so an empty category can still be deleted.
func (r *categoryRecipeRepository) ClearRecipesForCategory(ctx context.Context, categoryID uint) error {
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&entities.CategoryRecipe{}).Error; err != nil {
		r.log.Error("error clearing recipes for category", zap.Uint("category_id", categoryID), zap.Error(err))
		return err
	}
	return nil
}

func (r *categoryRecipeRepository) GetRecipeIDsByCategoryID(ctx context.Context, categoryID uint) ([]uint, error) {
	var recipeIDs []uint
	if err := r.db.WithContext(ctx).Model(&entities.CategoryRecipe{}).
		Where("category_id = ?", categoryID).
		Pluck("recipe_id", &recipeIDs).Error; err != nil {
		r.log.Error("error retrieving recipe ids for category", zap.Uint("category_id", categoryID), zap.Error(err))
		return nil, err
	}
	return recipeIDs, nil
}

func (r *categoryRecipeRepository) GetCategoryIDsByRecipeID(ctx context.Context, recipeID uint) ([]uint, error) {
	var categoryIDs []uint
	if err := r.db.WithContext(ctx).Model(&entities.CategoryRecipe{}).
		Where("recipe_id = ?", recipeID).
		Pluck("category_id", &categoryIDs).Error; err != nil {
		r.log.Error("error retrieving category ids for recipe", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return nil, err
	}
	return categoryIDs, nil
}
