// File: entities/ingredient.go
package entities

// Ingredient is one ingredient-to-recipe pairing. PairID 0 marks a row that
// has not been persisted yet; amounts are stored at the recipe's baseline
// serving count.
type Ingredient struct {
	PairID           uint   `gorm:"column:pair_id;primaryKey;autoIncrement" json:"pair_id"`
	RecipeID         uint   `gorm:"column:recipe_id;not null" json:"recipe_id"`
	IngredientName   string `gorm:"column:ingredient_name;not null" json:"ingredient_name"`
	IngredientAmount int    `gorm:"column:ingredient_amount" json:"ingredient_amount"`
	IngredientUnit   string `gorm:"column:unit" json:"unit,omitempty"`
}

func (Ingredient) TableName() string {
	return "ingredient"
}
