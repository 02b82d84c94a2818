package handlers

import (
	"net/http"

	"ecolearn_backend/internal/middleware"
	"ecolearn_backend/internal/services"
	"ecolearn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	*BaseHandler
	progressService services.ProgressService
}

func NewProgressHandler(base *BaseHandler, progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     base,
		progressService: progressService,
	}
}

func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	progress := rg.Group("/progress")
	progress.Use(middleware.RequireAuth())
	{
		progress.POST("/initialize", h.Initialize)
		progress.PUT("/update", h.Update)
		progress.GET("/paths", h.GetPaths)
		progress.GET("", h.GetUserProgress)
		progress.GET("/achievements", h.GetAchievements)
		progress.GET("/stats", h.GetStats)
	}
}

func (h *ProgressHandler) Initialize(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.progressService.Initialize(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User progress initialized successfully"})
}

func (h *ProgressHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProgressRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.progressService.Update(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProgressHandler) GetPaths(c *gin.Context) {
	paths, err := h.progressService.GetPaths()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, paths)
}

func (h *ProgressHandler) GetUserProgress(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	progress, err := h.progressService.GetUserProgress(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *ProgressHandler) GetAchievements(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	achievements, err := h.progressService.GetAchievements(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, achievements)
}

func (h *ProgressHandler) GetStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.progressService.GetStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
