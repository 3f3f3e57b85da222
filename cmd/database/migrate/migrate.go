package migration

import (
	"cafe-menu-backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}

	if err := SeedMenu(db); err != nil {
		log.Fatalf("Error seeding menu: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
