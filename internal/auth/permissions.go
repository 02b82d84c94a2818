package auth

import "ecolearn_backend/internal/models"

// Permissions - группа разрешений на роль.
// У принципала ровно одна группа, производная от роли в токене.
var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		"users:read",
		"users:write",
		"users:approve",
		"users:delete",
		"progress:read",
		"progress:write",
	},
	models.UserRoleTeacher: {
		"progress:read",
		"progress:write:self",
	},
	models.UserRoleAmbassador: {
		"progress:read",
		"progress:write:self",
	},
	models.UserRoleStudent: {
		"progress:read:self",
		"progress:write:self",
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение.
// Админ проходит любую проверку без поиска по группе.
func HasPermission(role models.UserRole, permission string) bool {
	if IsAdmin(role) {
		return true
	}

	permissions, exists := Permissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAdmin проверяет является ли роль административной
func IsAdmin(role models.UserRole) bool {
	return role == models.UserRoleAdmin
}
