package auth_test

import (
	"testing"

	"ecolearn_backend/internal/auth"
	"ecolearn_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		role       models.UserRole
		permission string
		want       bool
	}{
		{"админ проходит свое разрешение", models.UserRoleAdmin, "users:approve", true},
		{"админ проходит и чужое", models.UserRoleAdmin, "anything:at:all", true},
		{"учитель читает прогресс", models.UserRoleTeacher, "progress:read", true},
		{"учитель не управляет пользователями", models.UserRoleTeacher, "users:read", false},
		{"студент только свой прогресс", models.UserRoleStudent, "progress:read", false},
		{"неизвестная роль без разрешений", models.UserRole("GHOST"), "progress:read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.HasPermission(tt.role, tt.permission))
		})
	}
}

func TestIsAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, auth.IsAdmin(models.UserRoleAdmin))
	assert.False(t, auth.IsAdmin(models.UserRoleStudent))
}
