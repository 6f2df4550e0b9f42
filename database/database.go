package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Vuongmtien/final-test-fullstack-BE/config"
	"github.com/Vuongmtien/final-test-fullstack-BE/models"
)

var DB *gorm.DB

// Connect opens the database and migrates the schema. If the DB is not up
// the process exits immediately.
func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.TeacherPosition{},
		&models.Teacher{},
		&models.TeacherPositionLink{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}
