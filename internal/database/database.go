package database

import (
	"fmt"

	"ecolearn_backend/internal/logger"
	"ecolearn_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает соединение с postgres через GORM.
// TranslateError нужен, чтобы нарушение уникального индекса приходило
// как gorm.ErrDuplicatedKey, а не как сырая ошибка драйвера.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.LearningPath{},
		&models.UserProgress{},
		&models.UserAchievements{},
	)
	if err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
