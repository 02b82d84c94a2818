package models

import "time"

type ProgressStatus string

const (
	ProgressStatusNotStarted ProgressStatus = "NOT_STARTED"
	ProgressStatusInProgress ProgressStatus = "IN_PROGRESS"
	ProgressStatusCompleted  ProgressStatus = "COMPLETED"
)

// LearningPath - единица учебного контента с фиксированным числом уроков.
// Каталог статичный: засеивается один раз, дальше только читается.
type LearningPath struct {
	BaseModel
	Title        string `gorm:"not null"`
	Description  string `gorm:"not null"`
	TotalLessons int    `gorm:"not null"`
	Icon         string
	Color        string
	BgColor      string
	IsActive     bool `gorm:"default:true"`
	SortOrder    int  `gorm:"default:0"`
}

// UserProgress - прогресс пользователя по одному learning path.
// Уникален по паре (user_id, path_id). Меняется только прогресс-сервисом.
type UserProgress struct {
	BaseModel
	UserID             string         `gorm:"not null;uniqueIndex:idx_user_path"`
	PathID             string         `gorm:"not null;uniqueIndex:idx_user_path"`
	LessonsCompleted   int            `gorm:"not null;default:0"`
	ProgressPercentage float64        `gorm:"not null;default:0"`
	Status             ProgressStatus `gorm:"type:varchar(20);not null;default:'NOT_STARTED'"`
}

// ApplyProgress пересчитывает процент и статус из числа завершенных уроков.
// Статус - чистая функция от (lessonsCompleted, totalLessons).
func (p *UserProgress) ApplyProgress(lessonsCompleted, totalLessons int) {
	p.LessonsCompleted = lessonsCompleted
	if totalLessons > 0 {
		p.ProgressPercentage = float64(lessonsCompleted) / float64(totalLessons) * 100.0
	} else {
		p.ProgressPercentage = 0
	}

	switch {
	case p.ProgressPercentage >= 100.0:
		p.Status = ProgressStatusCompleted
	case p.LessonsCompleted > 0:
		p.Status = ProgressStatusInProgress
	default:
		p.Status = ProgressStatusNotStarted
	}

	p.UpdatedAt = time.Now()
}

// UserAchievements - агрегат наград, одна запись на пользователя.
// Меняется только achievement-сервисом.
type UserAchievements struct {
	BaseModel
	UserID             string `gorm:"not null;uniqueIndex"`
	PointsEarned       int    `gorm:"not null;default:0"`
	CertificatesEarned int    `gorm:"not null;default:0"`
	Level              int    `gorm:"not null;default:1"`
	Streak             int    `gorm:"not null;default:0"`
	// LastActiveDate хранится строкой "2006-01-02": стрик сравнивает
	// календарные даты, а не моменты времени
	LastActiveDate string `gorm:"not null"`
}

// AddPoints начисляет очки и детерминированно пересчитывает уровень
// от нового итога, а не инкрементально
func (a *UserAchievements) AddPoints(points int) {
	a.PointsEarned += points
	a.Level = a.PointsEarned/300 + 1
	a.UpdatedAt = time.Now()
}

// AddCertificate увеличивает счетчик сертификатов
func (a *UserAchievements) AddCertificate() {
	a.CertificatesEarned++
	a.UpdatedAt = time.Now()
}

// UpdateStreak увеличивает стрик не чаще раза в календарный день.
// Это счетчик "различных активных дней": при пропуске дня он не
// сбрасывается, а просто растет на следующем активном дне.
func (a *UserAchievements) UpdateStreak(today string) {
	if today != a.LastActiveDate {
		a.Streak++
		a.LastActiveDate = today
		a.UpdatedAt = time.Now()
	}
}
