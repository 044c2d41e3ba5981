package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"numero-bot/internal/domain"
	"numero-bot/internal/numerology"
	"numero-bot/internal/service"
)

// ReportHandler expone la generación y consulta de reportes.
type ReportHandler struct {
	logger  *zap.Logger
	reports *service.ReportService
}

func NewReportHandler(logger *zap.Logger, reports *service.ReportService) *ReportHandler {
	return &ReportHandler{logger: logger, reports: reports}
}

type personalReportFn func(ctx context.Context, userID, birthdate, fullName string) (domain.Report, error)

// MiniReport maneja POST /reports/mini.
func (h *ReportHandler) MiniReport(c *gin.Context) {
	h.personalReport(c, h.reports.MiniReport)
}

// FullReport maneja POST /reports/full.
func (h *ReportHandler) FullReport(c *gin.Context) {
	h.personalReport(c, h.reports.FullReport)
}

// Los reportes mini y full comparten request y manejo de errores; solo
// cambia el generador.
func (h *ReportHandler) personalReport(c *gin.Context, generate personalReportFn) {
	var req struct {
		UserID    string `json:"user_id" binding:"required"`
		Birthdate string `json:"birthdate" binding:"required"`
		FullName  string `json:"fio" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := generate(c.Request.Context(), req.UserID, req.Birthdate, req.FullName)
	if err != nil {
		h.reportError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// CompatibilityReport maneja POST /reports/compatibility.
func (h *ReportHandler) CompatibilityReport(c *gin.Context) {
	var req struct {
		UserID  string            `json:"user_id" binding:"required"`
		PersonA numerology.Person `json:"person1" binding:"required"`
		PersonB numerology.Person `json:"person2" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compatibility report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.reports.CompatibilityReport(c.Request.Context(), req.UserID, req.PersonA, req.PersonB)
	if err != nil {
		h.reportError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// ListReports maneja GET /users/:id/reports.
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reports.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("list reports failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// MarkPaid maneja POST /reports/:id/paid.
func (h *ReportHandler) MarkPaid(c *gin.Context) {
	if err := h.reports.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("mark paid failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not mark report paid"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReportHandler) reportError(c *gin.Context, err error) {
	var invalid *numerology.InvalidDateError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error("generate report failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate report"})
}
