package app

import (
	"fmt"
	"strings"

	"ecolearn_backend/internal/auth"
	"ecolearn_backend/internal/config"
	"ecolearn_backend/internal/database"
	"ecolearn_backend/internal/email"
	"ecolearn_backend/internal/handlers"
	"ecolearn_backend/internal/logger"
	"ecolearn_backend/internal/middleware"
	"ecolearn_backend/internal/models"
	"ecolearn_backend/internal/repositories"
	"ecolearn_backend/internal/routes"
	"ecolearn_backend/internal/services"
	"ecolearn_backend/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа некому одобрять аккаунты - не запускаем сервер
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	emailProvider := newEmailProvider(cfg)

	serviceContainer := services.NewServiceContainer(gormDB, emailProvider)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.AuthMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	ginRouter.Use(cors.New(corsConfig))

	return ginRouter
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email sending disabled, using noop provider")
		return email.NewNoopProvider()
	}

	provider, err := email.NewSMTPProvider(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("Invalid email config, falling back to noop provider", "error", err)
		return email.NewNoopProvider()
	}
	return provider
}

// seedFirstAdmin создает первого администратора, если админов еще нет.
// Пароль берется из конфига; без него посев пропускается.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	userRepo := repositories.NewUserRepository(db)

	count, err := userRepo.CountByRole(models.UserRoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.Admin.Password == "" {
		logger.Warn("No admin password configured, skipping admin seed")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	username := cfg.Admin.Email
	if idx := strings.Index(username, "@"); idx > 0 {
		username = username[:idx]
	}

	admin := &models.User{
		FirstName:    cfg.Admin.FirstName,
		LastName:     cfg.Admin.LastName,
		Username:     username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Enabled:      true,
	}

	if err := userRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("First admin user seeded", "email", cfg.Admin.Email)
	return nil
}
