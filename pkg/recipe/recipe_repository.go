package recipe

import (
	"context"
	"cookbook/domain"
	"cookbook/entities"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) (uint, error)
		DeleteRecipe(ctx context.Context, recipeID uint) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, recipeID uint) (*entities.Recipe, error)
		GetRecipeSummaryByID(ctx context.Context, recipeID uint) (*entities.Recipe, error)
		GetRecipeSummariesByTitle(ctx context.Context, keyword string) ([]*entities.Recipe, error)
		GetAllRecipeSummaries(ctx context.Context) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db  *gorm.DB
		log *zap.Logger
	}
)

func NewRecipeRepository(db *gorm.DB, log *zap.Logger) RecipeRepository {
	return &recipeRepository{db: db, log: log}
}

// validateRecipe rejects bad input before any store access.
func validateRecipe(recipe *entities.Recipe) error {
	if strings.TrimSpace(recipe.Title) == "" {
		return domain.ErrEmptyRecipeTitle
	}
	if recipe.PrepTime < 0 || recipe.CookTime < 0 {
		return domain.ErrNegativeRecipeTime
	}
	if recipe.Serve < 0 {
		return domain.ErrInvalidServe
	}
	return nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) (uint, error) {
	if err := validateRecipe(recipe); err != nil {
		return 0, err
	}

	recipe.Title = strings.TrimSpace(recipe.Title)
	recipe.Instruction = strings.TrimSpace(recipe.Instruction)
	recipe.ImgAddr = strings.TrimSpace(recipe.ImgAddr)

	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		r.log.Error("error creating recipe", zap.String("title", recipe.Title), zap.Error(err))
		return 0, err
	}

	return recipe.RecipeID, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	result := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.Recipe{})
	if result.Error != nil {
		r.log.Error("error deleting recipe", zap.Uint("recipe_id", recipeID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	if err := validateRecipe(recipe); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("recipe_id = ?", recipe.RecipeID).
		Updates(map[string]interface{}{
			"title":       strings.TrimSpace(recipe.Title),
			"prep_time":   recipe.PrepTime,
			"cook_time":   recipe.CookTime,
			"instruction": strings.TrimSpace(recipe.Instruction),
			"img_addr":    strings.TrimSpace(recipe.ImgAddr),
			"serve":       recipe.Serve,
		})
	if result.Error != nil {
		r.log.Error("error updating recipe", zap.Uint("recipe_id", recipe.RecipeID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		r.log.Error("error retrieving recipe", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeSummaryByID(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Select("recipe_id", "title", "img_addr").
		Where("recipe_id = ?", recipeID).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		r.log.Error("error retrieving recipe summary", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeSummariesByTitle matches titles containing keyword as a substring.
// An empty keyword degenerates to a LIKE '%%' match and returns every row;
// callers that want "no extra filter" short-circuit before getting here.
func (r *recipeRepository) GetRecipeSummariesByTitle(ctx context.Context, keyword string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Select("recipe_id", "title", "img_addr").
		Where("title LIKE ?", "%"+strings.TrimSpace(keyword)+"%").
		Find(&recipes).Error; err != nil {
		r.log.Error("error searching recipes by title", zap.String("keyword", keyword), zap.Error(err))
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetAllRecipeSummaries(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Select("recipe_id", "title", "img_addr").
		Find(&recipes).Error; err != nil {
		r.log.Error("error retrieving all recipe summaries", zap.Error(err))
		return nil, err
	}
	return recipes, nil
}
