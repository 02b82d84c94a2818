package services

import (
	"strings"

	"ecolearn_backend/internal/auth"
	"ecolearn_backend/internal/email"
	"ecolearn_backend/internal/logger"
	"ecolearn_backend/internal/models"
	"ecolearn_backend/internal/repositories"
	"ecolearn_backend/internal/services/dto"
	"ecolearn_backend/pkg/apperrors"
)

type UserService interface {
	// CreateWithRole - саморегистрация: студенты включаются сразу,
	// учителя и амбассадоры ждут одобрения админа
	CreateWithRole(req *dto.SignUpRequest) (*models.User, error)
	// CreateByAdmin - админ создает аккаунт любой роли, сразу включенный
	CreateByAdmin(req *dto.AdminCreateUserRequest) (*models.User, error)
	// ValidateUser - проверка учетных данных (email + пароль)
	ValidateUser(email, rawPassword string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ListPending() ([]dto.UserResponse, error)
	Approve(userID string) (*models.User, error)
	Reject(userID string) error
}

type UserServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewUserService(userRepo repositories.UserRepository, emailProvider email.Provider) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *UserServiceImpl) CreateWithRole(req *dto.SignUpRequest) (*models.User, error) {
	role, ok := models.ParseUserRole(req.Role)
	if !ok {
		return nil, apperrors.ErrInvalidUserRole
	}

	// Студент активен сразу, остальные роли ждут одобрения
	enabled := role == models.UserRoleStudent

	user, err := s.createUser(req.FirstName, req.LastName, req.Email, req.Password, role, enabled)
	if err != nil {
		return nil, err
	}

	if !enabled {
		// Уведомление не должно ронять регистрацию
		if mailErr := s.emailProvider.SendAccountPending(user.Email, user.FirstName); mailErr != nil {
			logger.Warn("failed to send account-pending email", "email", user.Email, "error", mailErr)
		}
	}

	return user, nil
}

func (s *UserServiceImpl) CreateByAdmin(req *dto.AdminCreateUserRequest) (*models.User, error) {
	role, ok := models.ParseUserRole(req.Role)
	if !ok {
		return nil, apperrors.ErrInvalidUserRole
	}

	// Аккаунты, созданные админом, минуют очередь одобрения
	return s.createUser(req.FirstName, req.LastName, req.Email, req.Password, role, true)
}

func (s *UserServiceImpl) createUser(firstName, lastName, emailAddr, password string, role models.UserRole, enabled bool) (*models.User, error) {
	exists, err := s.userRepo.ExistsByEmail(emailAddr)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	// Слой DTO проверяет то же правило, но сервис вызывают и без него
	// (посев админа), поэтому политика пароля дублируется здесь
	if err := auth.ValidatePassword(password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     usernameFromEmail(emailAddr),
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         role,
		Enabled:      enabled,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *UserServiceImpl) ValidateUser(emailAddr, rawPassword string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Не раскрываем, существует ли аккаунт
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(rawPassword, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserServiceImpl) GetByEmail(emailAddr string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) ListPending() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindPending()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *dto.UserResponseFromModel(&users[i]))
	}
	return responses, nil
}

// Approve включает аккаунт. Идемпотентно: повторное одобрение - no-op.
func (s *UserServiceImpl) Approve(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Enabled {
		return user, nil
	}

	user.Enabled = true
	if err := s.userRepo.Save(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if mailErr := s.emailProvider.SendAccountApproved(user.Email, user.FirstName); mailErr != nil {
		logger.Warn("failed to send account-approved email", "email", user.Email, "error", mailErr)
	}

	return user, nil
}

// Reject удаляет аккаунт из очереди одобрения. Терминальное действие.
func (s *UserServiceImpl) Reject(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// usernameFromEmail выводит username детерминированно из локальной части email
func usernameFromEmail(emailAddr string) string {
	if idx := strings.Index(emailAddr, "@"); idx > 0 {
		return emailAddr[:idx]
	}
	return emailAddr
}
