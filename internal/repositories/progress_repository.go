package repositories

import (
	"errors"

	"ecolearn_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProgressNotFound = errors.New("user progress not found")

type UserProgressRepository interface {
	FindByUserAndPath(userID, pathID string) (*models.UserProgress, error)
	// FindByUserAndPathForUpdate берет блокировку строки на время транзакции,
	// чтобы конкурентные инкременты по одной паре (user, path) сериализовались
	FindByUserAndPathForUpdate(userID, pathID string) (*models.UserProgress, error)
	FindByUser(userID string) ([]models.UserProgress, error)
	Create(progress *models.UserProgress) error
	Save(progress *models.UserProgress) error
	CountByUser(userID string) (int64, error)
	CountCompletedByUser(userID string) (int64, error)
}

type UserProgressRepositoryImpl struct {
	db *gorm.DB
}

func NewUserProgressRepository(db *gorm.DB) UserProgressRepository {
	return &UserProgressRepositoryImpl{db: db}
}

func (r *UserProgressRepositoryImpl) FindByUserAndPath(userID, pathID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.db.First(&progress, "user_id = ? AND path_id = ?", userID, pathID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return &progress, nil
}

func (r *UserProgressRepositoryImpl) FindByUserAndPathForUpdate(userID, pathID string) (*models.UserProgress, error) {
	var progress models.UserProgress

	query := r.db
	// sqlite (тесты) не поддерживает SELECT ... FOR UPDATE; там запись
	// сериализует сам единственный writer
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	err := query.First(&progress, "user_id = ? AND path_id = ?", userID, pathID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return &progress, nil
}

func (r *UserProgressRepositoryImpl) FindByUser(userID string) ([]models.UserProgress, error) {
	var progress []models.UserProgress
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&progress).Error
	return progress, err
}

func (r *UserProgressRepositoryImpl) Create(progress *models.UserProgress) error {
	return r.db.Create(progress).Error
}

func (r *UserProgressRepositoryImpl) Save(progress *models.UserProgress) error {
	return r.db.Save(progress).Error
}

func (r *UserProgressRepositoryImpl) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserProgress{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *UserProgressRepositoryImpl) CountCompletedByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserProgress{}).
		Where("user_id = ? AND status = ?", userID, models.ProgressStatusCompleted).
		Count(&count).Error
	return count, err
}
