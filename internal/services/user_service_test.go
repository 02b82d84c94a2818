package services_test

import (
	"testing"

	"ecolearn_backend/internal/email"
	"ecolearn_backend/internal/models"
	"ecolearn_backend/internal/repositories"
	"ecolearn_backend/internal/services"
	"ecolearn_backend/internal/services/dto"
	"ecolearn_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) services.UserService {
	return services.NewUserService(repositories.NewUserRepository(db), email.NewNoopProvider())
}

func signUpRequest(emailAddr, role string) *dto.SignUpRequest {
	return &dto.SignUpRequest{
		FirstName: "Aruzhan",
		LastName:  "Bekova",
		Email:     emailAddr,
		Password:  "super_password123",
		Role:      role,
	}
}

// TestCreateWithRole_Student - студент включается сразу
func TestCreateWithRole_Student(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	user, err := svc.CreateWithRole(signUpRequest("student@test.com", "Student"))
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleStudent, user.Role)
	assert.True(t, user.Enabled, "Студент должен быть включен сразу после регистрации")
	assert.Equal(t, "student", user.Username, "Username выводится из локальной части email")
	assert.NotEqual(t, "super_password123", user.PasswordHash, "Пароль не должен храниться открытым текстом")
}

// TestCreateWithRole_Teacher - учитель ждет одобрения
func TestCreateWithRole_Teacher(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	user, err := svc.CreateWithRole(signUpRequest("teacher@test.com", "teacher"))
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleTeacher, user.Role)
	assert.False(t, user.Enabled, "Учитель после саморегистрации должен ждать одобрения")
}

// TestCreateWithRole_InvalidRole - неизвестная или пустая роль отклоняется
func TestCreateWithRole_InvalidRole(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	for _, role := range []string{"", "WIZARD", "superadmin"} {
		_, err := svc.CreateWithRole(signUpRequest("u@test.com", role))
		assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole, "роль %q должна отклоняться", role)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count, "Никаких строк не должно остаться после неудачных регистраций")
}

// TestCreateWithRole_ShortPassword - политика пароля живет и в сервисе,
// а не только в validate-тегах DTO
func TestCreateWithRole_ShortPassword(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	req := signUpRequest("weak@test.com", "STUDENT")
	req.Password = "12345"

	_, err := svc.CreateWithRole(req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

// TestCreateWithRole_DuplicateEmail - дубликат email не создает новую строку
func TestCreateWithRole_DuplicateEmail(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.CreateWithRole(signUpRequest("dup@test.com", "STUDENT"))
	require.NoError(t, err)

	_, err = svc.CreateWithRole(signUpRequest("dup@test.com", "TEACHER"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

// TestCreateByAdmin - любая роль, сразу включен
func TestCreateByAdmin(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	user, err := svc.CreateByAdmin(&dto.AdminCreateUserRequest{
		FirstName: "Dana",
		LastName:  "Serik",
		Email:     "ambassador@test.com",
		Password:  "password123",
		Role:      "Ambassador",
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleAmbassador, user.Role)
	assert.True(t, user.Enabled, "Аккаунт от админа минует очередь одобрения")
}

// TestValidateUser - одна и та же ошибка на неизвестный email и неверный пароль
func TestValidateUser(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.CreateWithRole(signUpRequest("known@test.com", "STUDENT"))
	require.NoError(t, err)

	_, err = svc.ValidateUser("unknown@test.com", "super_password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.ValidateUser("known@test.com", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	user, err := svc.ValidateUser("known@test.com", "super_password123")
	require.NoError(t, err)
	assert.Equal(t, "known@test.com", user.Email)
}

// TestApprove_Idempotent - повторное одобрение ничего не меняет
func TestApprove_Idempotent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	created, err := svc.CreateWithRole(signUpRequest("pending@test.com", "TEACHER"))
	require.NoError(t, err)
	require.False(t, created.Enabled)

	approved, err := svc.Approve(created.ID)
	require.NoError(t, err)
	assert.True(t, approved.Enabled)

	again, err := svc.Approve(created.ID)
	require.NoError(t, err)
	assert.True(t, again.Enabled)
}

// TestReject - отклонение удаляет аккаунт целиком
func TestReject(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	created, err := svc.CreateWithRole(signUpRequest("reject@test.com", "AMBASSADOR"))
	require.NoError(t, err)

	require.NoError(t, svc.Reject(created.ID))

	_, err = svc.GetByEmail("reject@test.com")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Повторное отклонение - уже NotFound
	err = svc.Reject(created.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

// TestListPending - в очереди только невключенные аккаунты
func TestListPending(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.CreateWithRole(signUpRequest("s@test.com", "STUDENT"))
	require.NoError(t, err)
	_, err = svc.CreateWithRole(signUpRequest("t@test.com", "TEACHER"))
	require.NoError(t, err)

	pending, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "t@test.com", pending[0].Email)
}
