package ingredient

import (
	"context"
	"cookbook/domain"
	"cookbook/entities"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, pairID uint) error
		DeleteIngredientsByRecipeID(ctx context.Context, recipeID uint) error
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientsByRecipeID(ctx context.Context, recipeID uint) ([]*entities.Ingredient, error)
	}

	ingredientRepository struct {
		db  *gorm.DB
		log *zap.Logger
	}
)

func NewIngredientRepository(db *gorm.DB, log *zap.Logger) IngredientRepository {
	return &ingredientRepository{db: db, log: log}
}

func validateIngredient(ingredient *entities.Ingredient) error {
	if strings.TrimSpace(ingredient.IngredientName) == "" {
		return domain.ErrEmptyIngredientName
	}
	if ingredient.IngredientAmount <= 0 {
		return domain.ErrInvalidIngredientAmount
	}
	return nil
}

func (r *ingredientRepository) AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	if err := validateIngredient(ingredient); err != nil {
		return err
	}

	ingredient.IngredientName = strings.TrimSpace(ingredient.IngredientName)
	if err := r.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		r.log.Error("error adding ingredient",
			zap.Uint("recipe_id", ingredient.RecipeID),
			zap.String("name", ingredient.IngredientName),
			zap.Error(err))
		return err
	}
	return nil
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, pairID uint) error {
	result := r.db.WithContext(ctx).Where("pair_id = ?", pairID).Delete(&entities.Ingredient{})
	if result.Error != nil {
		r.log.Error("error deleting ingredient", zap.Uint("pair_id", pairID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

// DeleteIngredientsByRecipeID removes every ingredient of the recipe. A recipe
// with no ingredients deletes cleanly; zero affected rows is not a failure.
func (r *ingredientRepository) DeleteIngredientsByRecipeID(ctx context.Context, recipeID uint) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.Ingredient{}).Error; err != nil {
		r.log.Error("error deleting ingredients for recipe", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return err
	}
	return nil
}

// UpdateIngredient matches on pair_id AND recipe_id; an update that names a
// mismatched recipe affects zero rows and reports not-found.
func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	if err := validateIngredient(ingredient); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("pair_id = ? AND recipe_id = ?", ingredient.PairID, ingredient.RecipeID).
		Updates(map[string]interface{}{
			"ingredient_name":   strings.TrimSpace(ingredient.IngredientName),
			"ingredient_amount": ingredient.IngredientAmount,
			"unit":              ingredient.IngredientUnit,
		})
	if result.Error != nil {
		r.log.Error("error updating ingredient",
			zap.Uint("pair_id", ingredient.PairID),
			zap.Uint("recipe_id", ingredient.RecipeID),
			zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

func (r *ingredientRepository) GetIngredientsByRecipeID(ctx context.Context, recipeID uint) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&ingredients).Error; err != nil {
		r.log.Error("error retrieving ingredients for recipe", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return nil, err
	}
	return ingredients, nil
}
