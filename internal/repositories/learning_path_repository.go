package repositories

import (
	"errors"

	"ecolearn_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPathNotFound = errors.New("learning path not found")

type LearningPathRepository interface {
	FindByID(id string) (*models.LearningPath, error)
	FindAllActive() ([]models.LearningPath, error)
	Count() (int64, error)
	Create(path *models.LearningPath) error
}

type LearningPathRepositoryImpl struct {
	db *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) LearningPathRepository {
	return &LearningPathRepositoryImpl{db: db}
}

func (r *LearningPathRepositoryImpl) FindByID(id string) (*models.LearningPath, error) {
	var path models.LearningPath
	err := r.db.First(&path, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPathNotFound
		}
		return nil, err
	}
	return &path, nil
}

// FindAllActive возвращает активный каталог в порядке sort_order
func (r *LearningPathRepositoryImpl) FindAllActive() ([]models.LearningPath, error) {
	var paths []models.LearningPath
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&paths).Error
	return paths, err
}

func (r *LearningPathRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.LearningPath{}).Count(&count).Error
	return count, err
}

func (r *LearningPathRepositoryImpl) Create(path *models.LearningPath) error {
	return r.db.Create(path).Error
}
