package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"numero-bot/internal/service"
)

// SubscriptionHandler expone la suscripción semanal.
type SubscriptionHandler struct {
	logger *zap.Logger
	subs   *service.SubscriptionService
}

func NewSubscriptionHandler(logger *zap.Logger, subs *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{logger: logger, subs: subs}
}

// Subscribe maneja POST /subscriptions.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid subscribe request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub, err := h.subs.Subscribe(c.Request.Context(), req.UserID)
	if err != nil {
		h.logger.Error("subscribe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not subscribe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subscription": sub})
}

// GetSubscription maneja GET /subscriptions/:user_id.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	sub, err := h.subs.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
			return
		}
		h.logger.Error("get subscription failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// Cancel maneja DELETE /subscriptions/:user_id.
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	if err := h.subs.Cancel(c.Request.Context(), c.Param("user_id")); err != nil {
		h.logger.Error("cancel subscription failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not cancel subscription"})
		return
	}

	c.Status(http.StatusNoContent)
}

// WeeklyForecast maneja GET /subscriptions/:user_id/forecast.
func (h *SubscriptionHandler) WeeklyForecast(c *gin.Context) {
	forecast, err := h.subs.WeeklyForecast(c.Request.Context(), c.Param("user_id"), time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
		case errors.Is(err, service.ErrSubscriptionInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "subscription inactive"})
		default:
			h.logger.Error("weekly forecast failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build forecast"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecast": forecast})
}
