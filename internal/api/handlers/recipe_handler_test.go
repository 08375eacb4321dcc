package handlers_test

import (
	"bytes"
	"context"
	"cookbook/entities"
	"cookbook/internal/api/handlers"
	"cookbook/internal/api/presenters"
	"cookbook/internal/api/routes"
	"cookbook/internal/middleware"
	"cookbook/internal/utils/storage"
	"cookbook/pkg/category"
	"cookbook/pkg/ingredient"
	"cookbook/pkg/recipe"
	"cookbook/pkg/scale"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testApp struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Category{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.CategoryRecipe{},
	))

	log := zap.NewNop()
	recipeRepo := recipe.NewRecipeRepository(db, log)
	ingredientRepo := ingredient.NewIngredientRepository(db, log)
	categoryRepo := category.NewCategoryRepository(db, log)
	joinRepo := category.NewCategoryRecipeRepository(db, log)

	recipeService := recipe.NewRecipeService(recipeRepo, ingredientRepo, joinRepo, log)
	categoryService := category.NewCategoryService(categoryRepo, joinRepo, recipeRepo, log)
	scaleService := scale.NewScaleService(recipeRepo, ingredientRepo)

	imageStore, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "imgs"))
	require.NoError(t, err)

	app := fiber.New()
	routeConfig := routes.Config{
		App:             app,
		RecipeHandler:   handlers.NewRecipeHandler(recipeService, categoryService, imageStore, validator.New()),
		CategoryHandler: handlers.NewCategoryHandler(categoryService, validator.New()),
		ScaleHandler:    handlers.NewScaleHandler(scaleService),
		Middleware:      middleware.NewMiddleware(),
	}
	routeConfig.Setup()

	return &testApp{app: app, db: db}
}

func (ta *testApp) request(t *testing.T, method, target string, body any) (*http.Response, presenters.Response) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)

	var decoded presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	resp.Body.Close()
	return resp, decoded
}

func TestCreateRecipeRejectsDuplicateIngredientNames(t *testing.T) {
	ta := newTestApp(t)

	resp, body := ta.request(t, http.MethodPost, "/api/v1/recipes", fiber.Map{
		"title":       "Pancakes",
		"instruction": "Fry.",
		"serve":       2,
		"ingredients": []fiber.Map{
			{"name": "flour", "amount": 3},
			{"name": "flour", "amount": 1},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, body.Success)

	var count int64
	require.NoError(t, ta.db.Model(&entities.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetRecipesEmptyKeywordReturnsAll(t *testing.T) {
	ta := newTestApp(t)

	for _, title := range []string{"Chocolate Cake", "Beef Stew"} {
		resp, _ := ta.request(t, http.MethodPost, "/api/v1/recipes", fiber.Map{
			"title":       title,
			"instruction": "Cook.",
			"serve":       2,
			"ingredients": []fiber.Map{{"name": "salt", "amount": 1}},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := ta.request(t, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, body.Success)

	summaries, ok := body.Data.([]any)
	require.True(t, ok)
	assert.Len(t, summaries, 2)
}

func TestGetRecipesFiltersByKeyword(t *testing.T) {
	ta := newTestApp(t)

	for _, title := range []string{"Chocolate Cake", "Pancakes", "Beef Stew"} {
		resp, _ := ta.request(t, http.MethodPost, "/api/v1/recipes", fiber.Map{
			"title":       title,
			"instruction": "Cook.",
			"serve":       2,
			"ingredients": []fiber.Map{{"name": "salt", "amount": 1}},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := ta.request(t, http.MethodGet, "/api/v1/recipes?search=cake", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	summaries, ok := body.Data.([]any)
	require.True(t, ok)
	assert.Len(t, summaries, 2)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	ta := newTestApp(t)

	resp, body := ta.request(t, http.MethodGet, "/api/v1/recipes/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, body.Success)
}

func TestGetRecipeDetailRejectsBadID(t *testing.T) {
	ta := newTestApp(t)

	resp, _ := ta.request(t, http.MethodGet, "/api/v1/recipes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScaleEndpoint(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	rec := entities.Recipe{Title: "Pancakes", Serve: 4}
	require.NoError(t, ta.db.WithContext(ctx).Create(&rec).Error)
	require.NoError(t, ta.db.WithContext(ctx).Create(&entities.Ingredient{
		RecipeID:         rec.RecipeID,
		IngredientName:   "flour",
		IngredientAmount: 7,
		IngredientUnit:   "dl",
	}).Error)

	resp, body := ta.request(t, http.MethodGet, "/api/v1/recipes/1/scale?serve=6", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, body.Success)

	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	ingredients, ok := data["ingredients"].([]any)
	require.True(t, ok)
	require.Len(t, ingredients, 1)

	first, ok := ingredients[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(11), first["amount"])
}

func TestScaleEndpointRejectsNonPositiveServe(t *testing.T) {
	ta := newTestApp(t)

	rec := entities.Recipe{Title: "Soup", Serve: 2}
	require.NoError(t, ta.db.Create(&rec).Error)

	resp, _ := ta.request(t, http.MethodGet, "/api/v1/recipes/1/scale?serve=0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = ta.request(t, http.MethodGet, "/api/v1/recipes/1/scale", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoryLifecycleOverHTTP(t *testing.T) {
	ta := newTestApp(t)

	resp, _ := ta.request(t, http.MethodPost, "/api/v1/categories", fiber.Map{"name": "Dessert"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := ta.request(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	categories, ok := body.Data.([]any)
	require.True(t, ok)
	require.Len(t, categories, 1)

	resp, _ = ta.request(t, http.MethodPut, "/api/v1/categories/1", fiber.Map{"name": "Sweets"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = ta.request(t, http.MethodDelete, "/api/v1/categories/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Second delete hits the not-found path.
	resp, _ = ta.request(t, http.MethodDelete, "/api/v1/categories/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateRecipeCategoriesOverHTTP(t *testing.T) {
	ta := newTestApp(t)

	for _, name := range []string{"Breakfast", "Lunch"} {
		resp, _ := ta.request(t, http.MethodPost, "/api/v1/categories", fiber.Map{"name": name})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp, _ := ta.request(t, http.MethodPost, "/api/v1/recipes", fiber.Map{
		"title":       "Frittata",
		"instruction": "Bake.",
		"serve":       2,
		"ingredients": []fiber.Map{{"name": "egg", "amount": 4}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = ta.request(t, http.MethodPut, "/api/v1/recipes/1/categories", fiber.Map{
		"category_ids": []uint{1, 2},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := ta.request(t, http.MethodGet, "/api/v1/recipes/1/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	categories, ok := body.Data.([]any)
	require.True(t, ok)
	assert.Len(t, categories, 2)

	resp, body = ta.request(t, http.MethodGet, "/api/v1/categories/1/recipes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summaries, ok := body.Data.([]any)
	require.True(t, ok)
	assert.Len(t, summaries, 1)
}
