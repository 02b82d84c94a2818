package services

import (
	"math"

	"ecolearn_backend/internal/logger"
	"ecolearn_backend/internal/models"
	"ecolearn_backend/internal/repositories"
	"ecolearn_backend/internal/services/dto"
	"ecolearn_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProgressService interface {
	// Initialize идемпотентно готовит состояние пользователя:
	// запись наград, каталог path'ов и по одной записи прогресса
	// на каждый активный path
	Initialize(userID string) error
	// Update применяет инкремент прогресса и, при первом достижении
	// COMPLETED, каскадно начисляет награды
	Update(userID string, req *dto.UpdateProgressRequest) (*dto.UserProgressResponse, error)
	GetPaths() ([]dto.LearningPathResponse, error)
	GetUserProgress(userID string) ([]dto.UserProgressResponse, error)
	GetAchievements(userID string) (*dto.AchievementsResponse, error)
	GetStats(userID string) (*dto.ProgressStatsResponse, error)
}

type ProgressServiceImpl struct {
	db                 *gorm.DB
	achievementService AchievementService
}

func NewProgressService(db *gorm.DB, achievementService AchievementService) ProgressService {
	return &ProgressServiceImpl{
		db:                 db,
		achievementService: achievementService,
	}
}

func (s *ProgressServiceImpl) Initialize(userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		pathRepo := repositories.NewLearningPathRepository(tx)
		progressRepo := repositories.NewUserProgressRepository(tx)

		if _, err := userRepo.FindByID(userID); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrNotFound(err, "user", "User not found")
			}
			return apperrors.InternalError(err)
		}

		if err := s.achievementService.EnsureInitialized(tx, userID); err != nil {
			return err
		}

		// Одноразовый посев каталога при пустой таблице
		count, err := pathRepo.Count()
		if err != nil {
			return apperrors.InternalError(err)
		}
		if count == 0 {
			if err := seedLearningPaths(pathRepo); err != nil {
				return apperrors.InternalError(err)
			}
			logger.Info("learning path catalog seeded")
		}

		paths, err := pathRepo.FindAllActive()
		if err != nil {
			return apperrors.InternalError(err)
		}

		// Существующие записи прогресса никогда не перезаписываем
		for i := range paths {
			_, err := progressRepo.FindByUserAndPath(userID, paths[i].ID)
			if err == nil {
				continue
			}
			if !apperrors.Is(err, repositories.ErrProgressNotFound) {
				return apperrors.InternalError(err)
			}

			progress := &models.UserProgress{
				UserID: userID,
				PathID: paths[i].ID,
				Status: models.ProgressStatusNotStarted,
			}
			if err := progressRepo.Create(progress); err != nil {
				return apperrors.InternalError(err)
			}
		}

		return nil
	})
}

func (s *ProgressServiceImpl) Update(userID string, req *dto.UpdateProgressRequest) (*dto.UserProgressResponse, error) {
	var response *dto.UserProgressResponse

	// Read-modify-write по строке прогресса и каскад в награды - одна
	// транзакция с блокировкой строки: два конкурентных инкремента,
	// пересекающих порог 100%, не должны наградить дважды
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		pathRepo := repositories.NewLearningPathRepository(tx)
		progressRepo := repositories.NewUserProgressRepository(tx)

		if _, err := userRepo.FindByID(userID); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrNotFound(err, "user", "User not found")
			}
			return apperrors.InternalError(err)
		}

		path, err := pathRepo.FindByID(req.PathID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrPathNotFound) {
				return apperrors.ErrNotFound(err, "path", "Learning path not found")
			}
			return apperrors.InternalError(err)
		}

		// Update не создает записи: прогресс должен быть инициализирован
		progress, err := progressRepo.FindByUserAndPathForUpdate(userID, req.PathID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProgressNotFound) {
				return apperrors.ErrNotFound(err, "progress", "User progress not found")
			}
			return apperrors.InternalError(err)
		}

		// Минимум один урок за вызов, чтобы маленький процент не давал
		// нулевой инкремент; сверху ограничиваем числом уроков path'а
		incrementLessons := int(math.Ceil(req.IncrementPercent / 100.0 * float64(path.TotalLessons)))
		if incrementLessons < 1 {
			incrementLessons = 1
		}
		newLessonsCompleted := progress.LessonsCompleted + incrementLessons
		if newLessonsCompleted > path.TotalLessons {
			newLessonsCompleted = path.TotalLessons
		}

		wasCompleted := progress.Status == models.ProgressStatusCompleted
		progress.ApplyProgress(newLessonsCompleted, path.TotalLessons)

		if err := progressRepo.Save(progress); err != nil {
			return apperrors.InternalError(err)
		}

		// Награда ровно один раз: только при переходе в COMPLETED
		if progress.Status == models.ProgressStatusCompleted && !wasCompleted {
			if err := s.achievementService.AwardCompletion(tx, userID); err != nil {
				return err
			}
			logger.Info("learning path completed", "user_id", userID, "path_id", path.ID)
		}

		response = &dto.UserProgressResponse{
			PathID:             path.ID,
			PathTitle:          path.Title,
			LessonsCompleted:   progress.LessonsCompleted,
			TotalLessons:       path.TotalLessons,
			ProgressPercentage: progress.ProgressPercentage,
			Status:             progress.Status,
			UpdatedAt:          progress.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *ProgressServiceImpl) GetPaths() ([]dto.LearningPathResponse, error) {
	pathRepo := repositories.NewLearningPathRepository(s.db)

	paths, err := pathRepo.FindAllActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.LearningPathResponse, 0, len(paths))
	for i := range paths {
		responses = append(responses, *dto.LearningPathResponseFromModel(&paths[i]))
	}
	return responses, nil
}

func (s *ProgressServiceImpl) GetUserProgress(userID string) ([]dto.UserProgressResponse, error) {
	pathRepo := repositories.NewLearningPathRepository(s.db)
	progressRepo := repositories.NewUserProgressRepository(s.db)

	records, err := progressRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserProgressResponse, 0, len(records))
	for i := range records {
		record := &records[i]

		path, err := pathRepo.FindByID(record.PathID)
		if err != nil {
			// Каталог статичный, но на всякий случай не роняем весь список
			logger.Warn("progress row references missing path", "path_id", record.PathID)
			continue
		}

		responses = append(responses, dto.UserProgressResponse{
			PathID:             path.ID,
			PathTitle:          path.Title,
			LessonsCompleted:   record.LessonsCompleted,
			TotalLessons:       path.TotalLessons,
			ProgressPercentage: record.ProgressPercentage,
			Status:             record.Status,
			UpdatedAt:          record.UpdatedAt,
		})
	}
	return responses, nil
}

func (s *ProgressServiceImpl) GetAchievements(userID string) (*dto.AchievementsResponse, error) {
	achievements, err := s.achievementService.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.AchievementsResponseFromModel(achievements), nil
}

func (s *ProgressServiceImpl) GetStats(userID string) (*dto.ProgressStatsResponse, error) {
	progressRepo := repositories.NewUserProgressRepository(s.db)

	totalPaths, err := progressRepo.CountByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	completedPaths, err := progressRepo.CountCompletedByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	achievements, err := s.achievementService.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	var completionPercentage float64
	if totalPaths > 0 {
		completionPercentage = float64(completedPaths) / float64(totalPaths) * 100.0
	}

	return &dto.ProgressStatsResponse{
		TotalPaths:           int(totalPaths),
		CompletedPaths:       int(completedPaths),
		CompletionPercentage: completionPercentage,
		TotalCertificates:    achievements.CertificatesEarned,
		TotalPoints:          achievements.PointsEarned,
		Level:                achievements.Level,
		Streak:               achievements.Streak,
	}, nil
}

// seedLearningPaths сажает дефолтный каталог
func seedLearningPaths(repo repositories.LearningPathRepository) error {
	paths := []models.LearningPath{
		{
			Title:        "Climate Change Basics",
			Description:  "Understanding our changing planet",
			TotalLessons: 8,
			Icon:         "🌡️",
			Color:        "text-primary",
			BgColor:      "bg-primary/10",
			IsActive:     true,
			SortOrder:    1,
		},
		{
			Title:        "Renewable Energy",
			Description:  "Solar, wind, and clean power",
			TotalLessons: 6,
			Icon:         "⚡",
			Color:        "text-accent",
			BgColor:      "bg-accent/10",
			IsActive:     true,
			SortOrder:    2,
		},
		{
			Title:        "Ocean Conservation",
			Description:  "Protecting marine ecosystems",
			TotalLessons: 5,
			Icon:         "🌊",
			Color:        "text-success",
			BgColor:      "bg-success/10",
			IsActive:     true,
			SortOrder:    3,
		},
	}

	for i := range paths {
		if err := repo.Create(&paths[i]); err != nil {
			return err
		}
	}
	return nil
}
