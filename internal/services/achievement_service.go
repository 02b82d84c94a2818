package services

import (
	"time"

	"ecolearn_backend/internal/models"
	"ecolearn_backend/internal/repositories"
	"ecolearn_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Стартовые значения наград при онбординге. Это не нулевое состояние:
// новый аккаунт получает витринные значения, чтобы дашборд не был пустым.
const (
	seedPoints       = 2485
	seedCertificates = 3
	seedLevel        = 8
	seedStreak       = 7
)

// Начисление за завершение одного learning path
const completionPoints = 50

type AchievementService interface {
	// EnsureInitialized создает запись наград с seed-значениями, если ее нет
	EnsureInitialized(db *gorm.DB, userID string) error
	// AwardCompletion начисляет награды за завершение path.
	// Должен вызываться внутри транзакции, в которой зафиксировано завершение.
	AwardCompletion(db *gorm.DB, userID string) error
	GetByUser(userID string) (*models.UserAchievements, error)
}

type AchievementServiceImpl struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) AchievementService {
	return &AchievementServiceImpl{db: db}
}

func (s *AchievementServiceImpl) EnsureInitialized(db *gorm.DB, userID string) error {
	repo := repositories.NewAchievementRepository(db)

	_, err := repo.FindByUser(userID)
	if err == nil {
		return nil
	}
	if !apperrors.Is(err, repositories.ErrAchievementsNotFound) {
		return apperrors.InternalError(err)
	}

	achievements := &models.UserAchievements{
		UserID:             userID,
		PointsEarned:       seedPoints,
		CertificatesEarned: seedCertificates,
		Level:              seedLevel,
		Streak:             seedStreak,
		LastActiveDate:     today(),
	}
	if err := repo.Create(achievements); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AchievementServiceImpl) AwardCompletion(db *gorm.DB, userID string) error {
	repo := repositories.NewAchievementRepository(db)

	achievements, err := repo.FindByUserForUpdate(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAchievementsNotFound) {
			return apperrors.ErrNotFound(err, "achievements", "User achievements not found")
		}
		return apperrors.InternalError(err)
	}

	// Уровень пересчитывается от нового итога очков, не инкрементально
	achievements.AddPoints(completionPoints)
	achievements.AddCertificate()
	achievements.UpdateStreak(today())

	if err := repo.Save(achievements); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AchievementServiceImpl) GetByUser(userID string) (*models.UserAchievements, error) {
	repo := repositories.NewAchievementRepository(s.db)

	achievements, err := repo.FindByUser(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAchievementsNotFound) {
			return nil, apperrors.ErrNotFound(err, "achievements", "User achievements not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return achievements, nil
}

// today - календарная дата в формате хранения LastActiveDate
func today() string {
	return time.Now().Format("2006-01-02")
}
