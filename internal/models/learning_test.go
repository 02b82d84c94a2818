package models_test

import (
	"testing"

	"ecolearn_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		lessonsCompleted int
		totalLessons     int
		wantPercent      float64
		wantStatus       models.ProgressStatus
	}{
		{"ничего не пройдено", 0, 8, 0, models.ProgressStatusNotStarted},
		{"частичный прогресс", 3, 8, 37.5, models.ProgressStatusInProgress},
		{"все уроки", 8, 8, 100, models.ProgressStatusCompleted},
		{"деление на ноль при пустом path", 0, 0, 0, models.ProgressStatusNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.UserProgress{}
			p.ApplyProgress(tt.lessonsCompleted, tt.totalLessons)

			assert.InDelta(t, tt.wantPercent, p.ProgressPercentage, 0.001)
			assert.Equal(t, tt.wantStatus, p.Status)
			assert.False(t, p.UpdatedAt.IsZero(), "Мутация должна проставлять UpdatedAt")
		})
	}
}

func TestAddPoints_LevelRecompute(t *testing.T) {
	t.Parallel()

	a := &models.UserAchievements{}
	a.AddPoints(0)
	assert.Equal(t, 1, a.Level, "База - первый уровень")

	a.AddPoints(299)
	assert.Equal(t, 1, a.Level)

	a.AddPoints(1)
	assert.Equal(t, 2, a.Level, "Каждые 300 очков - новый уровень")

	// Уровень считается от итога, даже если стартовое значение было витринным
	b := &models.UserAchievements{PointsEarned: 2485, Level: 8}
	b.AddPoints(50)
	assert.Equal(t, 2535, b.PointsEarned)
	assert.Equal(t, 9, b.Level)
	assert.False(t, b.UpdatedAt.IsZero(), "Начисление должно проставлять UpdatedAt")
}

func TestUpdateStreak(t *testing.T) {
	t.Parallel()

	a := &models.UserAchievements{Streak: 7, LastActiveDate: "2026-08-29"}

	a.UpdateStreak("2026-08-30")
	assert.Equal(t, 8, a.Streak)
	assert.Equal(t, "2026-08-30", a.LastActiveDate)

	// Второй раз в тот же день - no-op
	a.UpdateStreak("2026-08-30")
	assert.Equal(t, 8, a.Streak)

	// Пропущенные дни стрик не сбрасывают
	a.UpdateStreak("2026-09-05")
	assert.Equal(t, 9, a.Streak)
}
