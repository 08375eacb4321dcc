package config

import (
	"cookbook/internal/api/handlers"
	"cookbook/internal/api/routes"
	"cookbook/internal/middleware"
	"cookbook/internal/utils"
	"cookbook/internal/utils/storage"
	"cookbook/pkg/category"
	"cookbook/pkg/ingredient"
	"cookbook/pkg/recipe"
	"cookbook/pkg/scale"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	zapLogger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	// setting up logging and limiter
	err = os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	imgDir := utils.GetConfig("IMG_DIR")
	if imgDir == "" {
		imgDir = filepath.Join(utils.DataDir(), "imgs")
	}
	imageStore, err := storage.NewLocalStorage(imgDir)
	if err != nil {
		return nil, err
	}

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db, zapLogger)
	ingredientRepository := ingredient.NewIngredientRepository(db, zapLogger)
	categoryRepository := category.NewCategoryRepository(db, zapLogger)
	categoryRecipeRepository := category.NewCategoryRecipeRepository(db, zapLogger)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository, categoryRecipeRepository, zapLogger)
	categoryService := category.NewCategoryService(categoryRepository, categoryRecipeRepository, recipeRepository, zapLogger)
	scaleService := scale.NewScaleService(recipeRepository, ingredientRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, categoryService, imageStore, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	scaleHandler := handlers.NewScaleHandler(scaleService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		RecipeHandler:   recipeHandler,
		CategoryHandler: categoryHandler,
		ScaleHandler:    scaleHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
