package migration

import (
	"Cocktail-Companion/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// CurrentSchemaVersion is bumped whenever a stored table changes shape. On a
// mismatch every table is dropped and rebuilt, so persisted favorites and
// creations do not survive a version bump.
const CurrentSchemaVersion = 2

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.SchemaVersion{}); err != nil {
		log.Fatalf("Error migrating schema version database: %v", err)
		return err
	}

	var stored entities.SchemaVersion
	err := db.Order("id desc").First(&stored).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	if err == nil && stored.Version != CurrentSchemaVersion {
		fmt.Printf("Schema version %d found, want %d, dropping all tables\n", stored.Version, CurrentSchemaVersion)
		if err := db.Migrator().DropTable(
			&entities.FavoriteCocktail{},
			&entities.CreatedCocktail{},
			&entities.SchemaVersion{},
		); err != nil {
			log.Fatalf("Error dropping tables: %v", err)
			return err
		}
		if err := db.AutoMigrate(&entities.SchemaVersion{}); err != nil {
			log.Fatalf("Error migrating schema version database: %v", err)
			return err
		}
		err = gorm.ErrRecordNotFound
	}

	if err := db.AutoMigrate(&entities.FavoriteCocktail{}); err != nil {
		log.Fatalf("Error migrating favorite cocktail database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CreatedCocktail{}); err != nil {
		log.Fatalf("Error migrating created cocktail database: %v", err)
		return err
	}

	if err == gorm.ErrRecordNotFound {
		if err := db.Create(&entities.SchemaVersion{Version: CurrentSchemaVersion}).Error; err != nil {
			log.Fatalf("Error recording schema version: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
