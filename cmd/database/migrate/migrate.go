package migration

import (
	"Recipe-Sharing-API/entities"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
			return fmt.Errorf("error creating uuid-ossp extension: %w", err)
		}
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("error migrating user database: %w", err)
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("error migrating recipe database: %w", err)
	}
	if err := db.AutoMigrate(&entities.Direction{}); err != nil {
		return fmt.Errorf("error migrating direction database: %w", err)
	}

	return nil
}
