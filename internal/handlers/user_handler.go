package handlers

import (
	"net/http"

	"ecolearn_backend/internal/middleware"
	"ecolearn_backend/internal/models"
	"ecolearn_backend/internal/services"
	"ecolearn_backend/internal/services/dto"
	"ecolearn_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("/me", h.GetCurrentUser)
	}

	// Ролевой гейт на группу, точечное разрешение на маршрут
	admin := rg.Group("/admin")
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/users", middleware.RequirePermission("users:write"), h.AdminCreateUser)
		admin.GET("/users/pending", middleware.RequirePermission("users:read"), h.ListPending)
		admin.PUT("/users/:id/approve", middleware.RequirePermission("users:approve"), h.Approve)
		admin.DELETE("/users/:id", middleware.RequirePermission("users:delete"), h.Reject)
	}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	email := middleware.GetUserEmail(c)
	if email == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	user, err := h.userService.GetByEmail(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponseFromModel(user))
}

func (h *UserHandler) AdminCreateUser(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateByAdmin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponseFromModel(user))
}

func (h *UserHandler) ListPending(c *gin.Context) {
	pending, err := h.userService.ListPending()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pending)
}

func (h *UserHandler) Approve(c *gin.Context) {
	user, err := h.userService.Approve(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponseFromModel(user))
}

func (h *UserHandler) Reject(c *gin.Context) {
	if err := h.userService.Reject(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
