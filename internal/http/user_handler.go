package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"numero-bot/internal/domain"
	"numero-bot/internal/repository"
)

// UserHandler mantiene dependencias para endpoints de usuarios.
type UserHandler struct {
	logger *zap.Logger
	users  repository.UserRepository
}

func NewUserHandler(logger *zap.Logger, users repository.UserRepository) *UserHandler {
	return &UserHandler{logger: logger, users: users}
}

// CreateUser maneja POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		TelegramID int64  `json:"telegram_id" binding:"required"`
		FullName   string `json:"fio"`
		Birthdate  string `json:"birthdate"`
		Language   string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// El mismo ID de Telegram no se registra dos veces: se devuelve el
	// usuario existente.
	if existing, err := h.users.GetByTelegramID(c.Request.Context(), req.TelegramID); err == nil {
		c.JSON(http.StatusOK, gin.H{"user": existing})
		return
	}

	if req.Language == "" {
		req.Language = "ru"
	}
	user := domain.User{
		ID:          uuid.NewString(),
		TelegramID:  req.TelegramID,
		FullName:    req.FullName,
		Birthdate:   req.Birthdate,
		Language:    req.Language,
		PushEnabled: true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		h.logger.Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetUser maneja GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("get user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateSettings maneja PATCH /users/:id/settings.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Language    string `json:"language" binding:"required"`
		PushEnabled *bool  `json:"push_enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid settings request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.users.UpdateSettings(c.Request.Context(), id, req.Language, *req.PushEnabled); err != nil {
		h.logger.Error("update settings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update settings"})
		return
	}

	c.Status(http.StatusNoContent)
}
