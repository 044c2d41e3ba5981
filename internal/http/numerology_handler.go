package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"numero-bot/internal/numerology"
	"numero-bot/internal/service"
)

// NumerologyHandler expone el motor de cálculo: perfil y compatibilidad.
type NumerologyHandler struct {
	logger   *zap.Logger
	profiles *service.ProfileService
}

func NewNumerologyHandler(logger *zap.Logger, profiles *service.ProfileService) *NumerologyHandler {
	return &NumerologyHandler{logger: logger, profiles: profiles}
}

// ComputeProfile maneja POST /profile.
func (h *NumerologyHandler) ComputeProfile(c *gin.Context) {
	var req struct {
		UserID    string `json:"user_id" binding:"required"`
		Birthdate string `json:"birthdate" binding:"required"`
		FullName  string `json:"fio" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	stored, err := h.profiles.Compute(c.Request.Context(), req.UserID, req.Birthdate, req.FullName)
	if err != nil {
		var invalid *numerology.InvalidDateError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalid.Error()})
			return
		}
		h.logger.Error("compute profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": stored})
}

// ComputeCompatibility maneja POST /compatibility.
func (h *NumerologyHandler) ComputeCompatibility(c *gin.Context) {
	var req struct {
		PersonA numerology.Person `json:"person1" binding:"required"`
		PersonB numerology.Person `json:"person2" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compatibility request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.profiles.Compatibility(c.Request.Context(), req.PersonA, req.PersonB)
	if err != nil {
		var invalid *numerology.InvalidDateError
		if errors.As(err, &invalid) {
			// El mensaje conserva a quién pertenece la fecha inválida.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("compute compatibility failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute compatibility"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"compatibility": result})
}
