package services_test

import (
	"fmt"
	"os"
	"testing"

	"ecolearn_backend/internal/config"
	"ecolearn_backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestMain задает process-wide конфигурацию один раз.
// Тесты ее только читают, поэтому t.Parallel() безопасен.
func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{}
	config.AppConfig.Server.Env = "development"
	config.AppConfig.JWT.Secret = "test-secret-key-that-is-long-enough-123"
	config.AppConfig.JWT.TTL = 60

	os.Exit(m.Run())
}

// setupTestDB создает изолированную in-memory sqlite базу на тест
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "Не удалось открыть тестовую базу")

	require.NoError(t, database.AutoMigrate(db), "Миграция тестовой базы не должна падать")

	return db
}
