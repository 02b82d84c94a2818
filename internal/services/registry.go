package services

import (
	"ecolearn_backend/internal/email"
	"ecolearn_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer собирает все сервисы приложения в одном месте
type ServiceContainer struct {
	UserService        UserService
	AuthService        AuthService
	AchievementService AchievementService
	ProgressService    ProgressService
}

// NewServiceContainer связывает репозитории и сервисы
func NewServiceContainer(db *gorm.DB, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)

	userService := NewUserService(userRepo, emailProvider)
	authService := NewAuthService(userService)
	achievementService := NewAchievementService(db)
	progressService := NewProgressService(db, achievementService)

	return &ServiceContainer{
		UserService:        userService,
		AuthService:        authService,
		AchievementService: achievementService,
		ProgressService:    progressService,
	}
}
