package dto

import (
	"time"

	"ecolearn_backend/internal/models"
)

type UpdateProgressRequest struct {
	PathID           string  `json:"pathId" validate:"required"`
	IncrementPercent float64 `json:"incrementPercent" validate:"required,gt=0,lte=100"`
}

type LearningPathResponse struct {
	PathID       string `json:"pathId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	TotalLessons int    `json:"totalLessons"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	BgColor      string `json:"bgColor"`
	SortOrder    int    `json:"sortOrder"`
	IsActive     bool   `json:"isActive"`
}

type UserProgressResponse struct {
	PathID             string                `json:"pathId"`
	PathTitle          string                `json:"pathTitle"`
	LessonsCompleted   int                   `json:"lessonsCompleted"`
	TotalLessons       int                   `json:"totalLessons"`
	ProgressPercentage float64               `json:"progressPercentage"`
	Status             models.ProgressStatus `json:"status"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

type AchievementsResponse struct {
	PointsEarned       int    `json:"pointsEarned"`
	CertificatesEarned int    `json:"certificatesEarned"`
	Level              int    `json:"level"`
	Streak             int    `json:"streak"`
	LastActiveDate     string `json:"lastActiveDate"`
}

type ProgressStatsResponse struct {
	TotalPaths           int     `json:"totalPaths"`
	CompletedPaths       int     `json:"completedPaths"`
	CompletionPercentage float64 `json:"completionPercentage"`
	TotalCertificates    int     `json:"totalCertificates"`
	TotalPoints          int     `json:"totalPoints"`
	Level                int     `json:"level"`
	Streak               int     `json:"streak"`
}

func LearningPathResponseFromModel(path *models.LearningPath) *LearningPathResponse {
	return &LearningPathResponse{
		PathID:       path.ID,
		Title:        path.Title,
		Description:  path.Description,
		TotalLessons: path.TotalLessons,
		Icon:         path.Icon,
		Color:        path.Color,
		BgColor:      path.BgColor,
		SortOrder:    path.SortOrder,
		IsActive:     path.IsActive,
	}
}

func AchievementsResponseFromModel(a *models.UserAchievements) *AchievementsResponse {
	return &AchievementsResponse{
		PointsEarned:       a.PointsEarned,
		CertificatesEarned: a.CertificatesEarned,
		Level:              a.Level,
		Streak:             a.Streak,
		LastActiveDate:     a.LastActiveDate,
	}
}
