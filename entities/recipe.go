// File: entities/recipe.go
package entities

type Recipe struct {
	RecipeID    uint   `gorm:"column:recipe_id;primaryKey;autoIncrement" json:"recipe_id"`
	Title       string `gorm:"column:title;not null" json:"title"`
	PrepTime    int    `gorm:"column:prep_time" json:"prep_time"`
	CookTime    int    `gorm:"column:cook_time" json:"cook_time"`
	Instruction string `gorm:"column:instruction;type:text" json:"instruction"`
	ImgAddr     string `gorm:"column:img_addr" json:"img_addr,omitempty"`
	Serve       int    `gorm:"column:serve" json:"serve"`
}

func (Recipe) TableName() string {
	return "recipe"
}

// TotalTime is prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
