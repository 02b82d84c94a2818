package validator

import (
	"ecolearn_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации
func registerCustomRules(v *validator.Validate) error {
	// user_role: строка должна нормализоваться в одну из четырех известных ролей.
	// Пустое значение пропускаем - за "required" отвечает отдельный тег.
	return v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, ok := models.ParseUserRole(s)
		return ok
	})
}
