package domain

import (
	"errors"
)

var (
	MessageSuccessGetCategories    = "success get categories"
	MessageSuccessCreateCategory   = "category created successfully"
	MessageSuccessUpdateCategory   = "category updated successfully"
	MessageSuccessDeleteCategory   = "category deleted successfully"
	MessageSuccessUpdateRecipeCats = "recipe categories updated successfully"

	MessageFailedGetCategories    = "failed to get categories"
	MessageFailedCreateCategory   = "failed to create category"
	MessageFailedUpdateCategory   = "failed to update category"
	MessageFailedDeleteCategory   = "failed to delete category"
	MessageFailedUpdateRecipeCats = "failed to update recipe categories"

	ErrCategoryNotFound  = errors.New("no category deleted, the category may not exist")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)

type (
	CreateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateRecipeCategoriesRequest struct {
		CategoryIDs []uint `json:"category_ids"`
	}

	CategoryResponse struct {
		CategoryID uint   `json:"category_id"`
		Name       string `json:"name"`
	}
)
