package repositories

import (
	"errors"

	"ecolearn_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAchievementsNotFound = errors.New("user achievements not found")

type AchievementRepository interface {
	FindByUser(userID string) (*models.UserAchievements, error)
	// FindByUserForUpdate берет блокировку строки: начисления очков и
	// сертификатов для одного пользователя должны идти строго по очереди
	FindByUserForUpdate(userID string) (*models.UserAchievements, error)
	Create(achievements *models.UserAchievements) error
	Save(achievements *models.UserAchievements) error
}

type AchievementRepositoryImpl struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &AchievementRepositoryImpl{db: db}
}

func (r *AchievementRepositoryImpl) FindByUser(userID string) (*models.UserAchievements, error) {
	var achievements models.UserAchievements
	err := r.db.First(&achievements, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAchievementsNotFound
		}
		return nil, err
	}
	return &achievements, nil
}

func (r *AchievementRepositoryImpl) FindByUserForUpdate(userID string) (*models.UserAchievements, error) {
	var achievements models.UserAchievements

	query := r.db
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	err := query.First(&achievements, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAchievementsNotFound
		}
		return nil, err
	}
	return &achievements, nil
}

func (r *AchievementRepositoryImpl) Create(achievements *models.UserAchievements) error {
	return r.db.Create(achievements).Error
}

func (r *AchievementRepositoryImpl) Save(achievements *models.UserAchievements) error {
	return r.db.Save(achievements).Error
}
