package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload image"

	ErrRecipeNotFound          = errors.New("recipe not found")
	ErrEmptyRecipeTitle        = errors.New("recipe title cannot be empty")
	ErrEmptyInstruction        = errors.New("recipe instruction cannot be empty")
	ErrNegativeRecipeTime      = errors.New("prep and cook time cannot be negative")
	ErrInvalidServe            = errors.New("serving count must be positive")
	ErrIngredientNotFound      = errors.New("ingredient not found for recipe")
	ErrEmptyIngredientName     = errors.New("ingredient name cannot be empty")
	ErrInvalidIngredientAmount = errors.New("ingredient amount must be positive")
	ErrDuplicateIngredient     = errors.New("ingredient names must be unique within a recipe")
)

type (
	IngredientRequest struct {
		// PairID 0 means the ingredient has not been persisted yet.
		PairID uint   `json:"pair_id"`
		Name   string `json:"name" validate:"required"`
		Amount int    `json:"amount" validate:"required,gt=0"`
		Unit   string `json:"unit"`
	}

	CreateRecipeRequest struct {
		Title       string              `json:"title" validate:"required"`
		PrepTime    int                 `json:"prep_time" validate:"gte=0"`
		CookTime    int                 `json:"cook_time" validate:"gte=0"`
		Instruction string              `json:"instruction" validate:"required"`
		ImgAddr     string              `json:"img_addr"`
		Serve       int                 `json:"serve" validate:"required,gt=0"`
		Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		CategoryIDs []uint              `json:"category_ids"`
	}

	UpdateRecipeRequest struct {
		Title          string              `json:"title" validate:"required"`
		PrepTime       int                 `json:"prep_time" validate:"gte=0"`
		CookTime       int                 `json:"cook_time" validate:"gte=0"`
		Instruction    string              `json:"instruction" validate:"required"`
		ImgAddr        string              `json:"img_addr"`
		Serve          int                 `json:"serve" validate:"required,gt=0"`
		Ingredients    []IngredientRequest `json:"ingredients" validate:"dive"`
		DeletedPairIDs []uint              `json:"deleted_pair_ids"`
	}

	IngredientResponse struct {
		PairID uint   `json:"pair_id"`
		Name   string `json:"name"`
		Amount int    `json:"amount"`
		Unit   string `json:"unit,omitempty"`
	}

	RecipeSummaryResponse struct {
		RecipeID uint   `json:"recipe_id"`
		Title    string `json:"title"`
		ImgAddr  string `json:"img_addr,omitempty"`
	}

	RecipeDetailResponse struct {
		RecipeID    uint                 `json:"recipe_id"`
		Title       string               `json:"title"`
		PrepTime    int                  `json:"prep_time"`
		CookTime    int                  `json:"cook_time"`
		TotalTime   int                  `json:"total_time"`
		Instruction string               `json:"instruction"`
		ImgAddr     string               `json:"img_addr,omitempty"`
		Serve       int                  `json:"serve"`
		Ingredients []IngredientResponse `json:"ingredients"`
	}

	UploadImageResponse struct {
		ImgAddr string `json:"img_addr"`
	}
)
