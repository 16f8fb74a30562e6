package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	reportUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/report"
)

// DashboardHandler serves the aggregated dashboard and stats views
type DashboardHandler struct {
	reportService *reportUseCase.Service
	logger        coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(reportService *reportUseCase.Service, logger coreport.Logger) *DashboardHandler {
	return &DashboardHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Overview handles the GET /api/dashboard endpoint
func (h *DashboardHandler) Overview(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	overview, err := h.reportService.Overview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// Stats handles the GET /api/dashboard/stats endpoint
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	stats, err := h.reportService.Stats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
