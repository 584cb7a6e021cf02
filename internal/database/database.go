package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gradebook/internal/model"
)

func InitDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to the database:", err)
	}

	// Auto-migrate the students and upload history tables
	if err := db.AutoMigrate(&model.Student{}, &model.UploadHistory{}); err != nil {
		log.Fatal("Failed to auto-migrate the database:", err)
	}

	return db
}

// Ping reports whether the underlying connection is still reachable.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
