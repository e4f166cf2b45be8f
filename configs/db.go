package configs

import (
	"log"

	"github.com/SARVESHYOGI/store-rating-system/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	default:
		dial = sqlite.Open(cfg.DBSource)
	}

	// TranslateError turns driver unique violations into
	// gorm.ErrDuplicatedKey so they map onto the conflict taxonomy.
	database, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema. Rating carries the composite unique index on
	// (user_id, store_id).
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Store{},
		&entity.Rating{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}
