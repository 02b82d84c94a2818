package handlers

import (
	"ecolearn_backend/internal/services"
	"ecolearn_backend/internal/validator"
)

// AppHandlers собирает все HTTP хендлеры приложения
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	ProgressHandler *ProgressHandler
}

// NewAppHandlers связывает сервисы и хендлеры
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, sc.AuthService),
		UserHandler:     NewUserHandler(base, sc.UserService),
		ProgressHandler: NewProgressHandler(base, sc.ProgressService),
	}
}
