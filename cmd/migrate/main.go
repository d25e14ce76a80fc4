package main

import (
	"encoding/json"
	"log"

	"activitylog-be/internal/config"
	"activitylog-be/internal/entity"
	"activitylog-be/internal/model"
	"activitylog-be/pkg/database"
	"activitylog-be/pkg/timeline"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const schemaVersion = 1

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	models := []interface{}{
		&model.WindowEvent{},
		&model.KeyEvent{},
		&model.Note{},
		&model.DailyLog{},
		&model.Setting{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}
	log.Printf("Migrated %d tables", len(models))

	seedDefaultSettings(db)

	log.Println("Migration completed!")
}

// seedDefaultSettings writes each default setting only when the key has
// never been set, so re-running the migration never clobbers edits.
func seedDefaultSettings(db *gorm.DB) {
	defaults := map[string]interface{}{
		entity.SettingDayBoundaryHour: timeline.DefaultBoundaryHour,
		entity.SettingCategoryRules:   []timeline.Rule{},
		entity.SettingFocusCategories: entity.DefaultSettings().FocusCategories,
		entity.SettingSchemaVersion:   schemaVersion,
	}

	for key, value := range defaults {
		var existing model.Setting
		if err := db.Where("key = ?", key).First(&existing).Error; err == nil {
			log.Printf("Setting '%s' already exists, skipping...", key)
			continue
		}

		payload, err := json.Marshal(value)
		if err != nil {
			log.Printf("Error marshaling default for '%s': %v", key, err)
			continue
		}
		if err := db.Create(&model.Setting{Key: key, Value: datatypes.JSON(payload)}).Error; err != nil {
			log.Printf("Error seeding setting '%s': %v", key, err)
		} else {
			log.Printf("Seeded setting: %s", key)
		}
	}
}
