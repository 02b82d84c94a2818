package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"ecolearn_backend/internal/auth"
	"ecolearn_backend/internal/config"
	"ecolearn_backend/internal/middleware"
	"ecolearn_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{}
	config.AppConfig.Server.Env = "development"
	config.AppConfig.JWT.Secret = "test-secret-key-that-is-long-enough-123"
	config.AppConfig.JWT.TTL = 60
	os.Exit(m.Run())
}

// newProtectedRouter поднимает роутер с цепочкой auth-мидлварей:
// открытый, закрытый и админский эндпоинты
func newProtectedRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.AuthMiddleware())

	router.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": middleware.GetUserEmail(c)})
	})

	protected := router.Group("/", middleware.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": middleware.GetUserID(c)})
	})

	admin := router.Group("/admin", middleware.RequireRoles(models.UserRoleAdmin))
	admin.GET("/users", middleware.RequirePermission("users:read"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Маршруты, закрытые только разрешением, без ролевого гейта
	router.GET("/catalog", middleware.RequirePermission("progress:read"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/pending-view", middleware.RequirePermission("users:read"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func doRequest(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, role models.UserRole) string {
	t.Helper()
	token, err := auth.GenerateToken(&models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "user@eco.com",
		Role:      role,
	})
	require.NoError(t, err)
	return token
}

// TestAuthMiddleware_InvalidTokenIsAnonymous - мусорный токен не роняет запрос
func TestAuthMiddleware_InvalidTokenIsAnonymous(t *testing.T) {
	t.Parallel()

	router := newProtectedRouter()

	// Открытый эндпоинт доступен с мусорным токеном, принципала нет
	rec := doRequest(t, router, "/open", "garbage.token.here")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":""`)

	// Закрытый эндпоинт с тем же токеном - уже 401
	rec = doRequest(t, router, "/me", "garbage.token.here")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRequireAuth - без токена 401, с валидным токеном 200
func TestRequireAuth(t *testing.T) {
	t.Parallel()

	router := newProtectedRouter()

	rec := doRequest(t, router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, "/me", tokenFor(t, models.UserRoleStudent))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":"user-1"`)
}

// TestRequireRoles - студенту 403, админу 200, анониму 401
func TestRequireRoles(t *testing.T) {
	t.Parallel()

	router := newProtectedRouter()

	rec := doRequest(t, router, "/admin/users", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, "/admin/users", tokenFor(t, models.UserRoleStudent))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, "/admin/users", tokenFor(t, models.UserRoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRequirePermission - доступ по группе разрешений роли
func TestRequirePermission(t *testing.T) {
	t.Parallel()

	router := newProtectedRouter()

	// Аноним не проходит ни одно разрешение
	rec := doRequest(t, router, "/catalog", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// У учителя есть progress:read, но нет users:read
	rec = doRequest(t, router, "/catalog", tokenFor(t, models.UserRoleTeacher))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, "/pending-view", tokenFor(t, models.UserRoleTeacher))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Студент читает только свой прогресс
	rec = doRequest(t, router, "/catalog", tokenFor(t, models.UserRoleStudent))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Админ проходит любую проверку
	rec = doRequest(t, router, "/pending-view", tokenFor(t, models.UserRoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Админский маршрут с точечным разрешением проходится целиком
	rec = doRequest(t, router, "/admin/users", tokenFor(t, models.UserRoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}
