package models

import "strings"

type UserRole string

const (
	UserRoleStudent    UserRole = "STUDENT"
	UserRoleTeacher    UserRole = "TEACHER"
	UserRoleAmbassador UserRole = "AMBASSADOR"
	UserRoleAdmin      UserRole = "ADMIN"
)

// ParseUserRole нормализует строку роли (trim + upper).
// Возвращает false, если роль пустая или неизвестная.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case UserRoleStudent:
		return UserRoleStudent, true
	case UserRoleTeacher:
		return UserRoleTeacher, true
	case UserRoleAmbassador:
		return UserRoleAmbassador, true
	case UserRoleAdmin:
		return UserRoleAdmin, true
	default:
		return "", false
	}
}

type User struct {
	BaseModel
	FirstName    string   `gorm:"not null"`
	LastName     string   `gorm:"not null"`
	Username     string   `gorm:"not null"`
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	// Enabled - ворота одобрения: TEACHER/AMBASSADOR после саморегистрации
	// ждут, пока админ не включит аккаунт
	Enabled bool `gorm:"default:false"`
}
