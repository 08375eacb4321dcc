package domain

import (
	"errors"
)

var (
	MessageSuccessScaleRecipe = "success scale recipe"
	MessageFailedScaleRecipe  = "failed to scale recipe"

	ErrInvalidScaleServe = errors.New("requested serving count must be positive")
)

type (
	ScaledIngredient struct {
		Name   string `json:"name"`
		Amount int    `json:"amount"`
		Unit   string `json:"unit,omitempty"`
	}

	ScaleResponse struct {
		RecipeID    uint               `json:"recipe_id"`
		Serve       int                `json:"serve"`
		Ingredients []ScaledIngredient `json:"ingredients"`
	}
)
