package scale_test

import (
	"context"
	"cookbook/domain"
	"cookbook/entities"
	"cookbook/pkg/ingredient"
	"cookbook/pkg/recipe"
	"cookbook/pkg/scale"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Category{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.CategoryRecipe{},
	)
	require.NoError(t, err)

	return db
}

func newScaleService(t *testing.T) (scale.ScaleService, *gorm.DB) {
	db := setupTestDB(t)
	log := zap.NewNop()
	recipeRepository := recipe.NewRecipeRepository(db, log)
	ingredientRepository := ingredient.NewIngredientRepository(db, log)
	return scale.NewScaleService(recipeRepository, ingredientRepository), db
}

func TestScaleRoundsUpProportionally(t *testing.T) {
	svc, db := newScaleService(t)
	ctx := context.Background()

	rec := entities.Recipe{Title: "Pancakes", Serve: 4}
	require.NoError(t, db.Create(&rec).Error)
	require.NoError(t, db.Create(&entities.Ingredient{
		RecipeID:         rec.RecipeID,
		IngredientName:   "flour",
		IngredientAmount: 7,
		IngredientUnit:   "dl",
	}).Error)

	res, err := svc.Scale(ctx, rec.RecipeID, 6)
	require.NoError(t, err)

	// ceil(7 * 6/4) = ceil(10.5) = 11
	require.Len(t, res.Ingredients, 1)
	assert.Equal(t, "flour", res.Ingredients[0].Name)
	assert.Equal(t, 11, res.Ingredients[0].Amount)
	assert.Equal(t, "dl", res.Ingredients[0].Unit)
	assert.Equal(t, 6, res.Serve)
}

func TestScaleExactMultiple(t *testing.T) {
	svc, db := newScaleService(t)
	ctx := context.Background()

	rec := entities.Recipe{Title: "Soup", Serve: 2}
	require.NoError(t, db.Create(&rec).Error)
	require.NoError(t, db.Create(&entities.Ingredient{
		RecipeID:         rec.RecipeID,
		IngredientName:   "carrot",
		IngredientAmount: 3,
	}).Error)

	res, err := svc.Scale(ctx, rec.RecipeID, 8)
	require.NoError(t, err)
	require.Len(t, res.Ingredients, 1)
	assert.Equal(t, 12, res.Ingredients[0].Amount)
}

func TestScaleDownNeverBelowOne(t *testing.T) {
	svc, db := newScaleService(t)
	ctx := context.Background()

	rec := entities.Recipe{Title: "Cake", Serve: 8}
	require.NoError(t, db.Create(&rec).Error)
	require.NoError(t, db.Create(&entities.Ingredient{
		RecipeID:         rec.RecipeID,
		IngredientName:   "vanilla pod",
		IngredientAmount: 1,
	}).Error)

	res, err := svc.Scale(ctx, rec.RecipeID, 1)
	require.NoError(t, err)
	require.Len(t, res.Ingredients, 1)
	assert.Equal(t, 1, res.Ingredients[0].Amount)
}

func TestScaleIsReadOnly(t *testing.T) {
	svc, db := newScaleService(t)
	ctx := context.Background()

	rec := entities.Recipe{Title: "Stew", Serve: 4}
	require.NoError(t, db.Create(&rec).Error)
	require.NoError(t, db.Create(&entities.Ingredient{
		RecipeID:         rec.RecipeID,
		IngredientName:   "beef",
		IngredientAmount: 500,
		IngredientUnit:   "g",
	}).Error)

	first, err := svc.Scale(ctx, rec.RecipeID, 10)
	require.NoError(t, err)
	second, err := svc.Scale(ctx, rec.RecipeID, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var stored entities.Ingredient
	require.NoError(t, db.Where("recipe_id = ?", rec.RecipeID).First(&stored).Error)
	assert.Equal(t, 500, stored.IngredientAmount)
}

func TestScaleRecipeNotFound(t *testing.T) {
	svc, _ := newScaleService(t)

	_, err := svc.Scale(context.Background(), 12345, 2)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestScaleRejectsNonPositiveServe(t *testing.T) {
	svc, _ := newScaleService(t)

	_, err := svc.Scale(context.Background(), 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidScaleServe)

	_, err = svc.Scale(context.Background(), 1, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidScaleServe)
}
