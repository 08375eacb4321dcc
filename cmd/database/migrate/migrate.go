package migration

import (
	"cookbook/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Printf("Error migrating category table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Printf("Error migrating recipe table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Printf("Error migrating ingredient table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CategoryRecipe{}); err != nil {
		log.Printf("Error migrating category_recipe table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
