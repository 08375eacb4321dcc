package routes

import (
	"cookbook/internal/api/handlers"
	"cookbook/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	RecipeHandler   handlers.RecipeHandler
	CategoryHandler handlers.CategoryHandler
	ScaleHandler    handlers.ScaleHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Categories()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Post("/image", c.RecipeHandler.UploadImage)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
		recipes.Get("/:id/scale", c.ScaleHandler.ScaleRecipe)
		recipes.Get("/:id/categories", c.CategoryHandler.GetCategoriesForRecipe)
		recipes.Put("/:id/categories", c.CategoryHandler.UpdateRecipeCategories)
	}
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")
	{
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Post("", c.CategoryHandler.CreateCategory)
		categories.Put("/:id", c.CategoryHandler.UpdateCategory)
		categories.Delete("/:id", c.CategoryHandler.DeleteCategory)
		categories.Get("/:id/recipes", c.CategoryHandler.GetRecipesForCategory)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
