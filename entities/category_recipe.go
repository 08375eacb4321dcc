// File: entities/category_recipe.go
package entities

// CategoryRecipe is a join row between a category and a recipe. The composite
// primary key keeps (category_id, recipe_id) pairs unique.
type CategoryRecipe struct {
	CategoryID uint `gorm:"column:category_id;primaryKey" json:"category_id"`
	RecipeID   uint `gorm:"column:recipe_id;primaryKey" json:"recipe_id"`
}

func (CategoryRecipe) TableName() string {
	return "category_recipe"
}
