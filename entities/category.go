// File: entities/category.go
package entities

type Category struct {
	CategoryID   uint   `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryName string `gorm:"column:category_name;not null" json:"category_name"`
}

func (Category) TableName() string {
	return "category"
}
