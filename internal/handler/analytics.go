package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tradingnotex/internal/repository"
	"tradingnotex/internal/riskengine"
	"tradingnotex/internal/service"
)

type AnalyticsHandler struct {
	Service *service.AnalyticsService
	Repo    repository.Repository
}

func (h *AnalyticsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/analytics")
	group.GET("/kpis", h.kpis)
	group.GET("/discipline", h.discipline)
}

// @Summary Journal KPIs over a day window
// @Tags analytics
// @Param from query string true "start day, YYYY-MM-DD"
// @Param to query string true "end day, YYYY-MM-DD, inclusive"
// @Success 200 {object} apiResponse{data=analytics.KPIs}
// @Router /api/v1/analytics/kpis [get]
func (h *AnalyticsHandler) kpis(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	kpis, err := h.Service.KPIs(c.Request.Context(), ownerID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		engineError(c, err)
		return
	}
	Ok(c, kpis, nil)
}

// @Summary Stored daily discipline snapshots over a day window
// @Tags analytics
// @Param from query string true "start day, YYYY-MM-DD"
// @Param to query string true "end day, YYYY-MM-DD, inclusive"
// @Success 200 {object} apiResponse{data=[]models.DisciplineDayStat}
// @Router /api/v1/analytics/discipline [get]
func (h *AnalyticsHandler) discipline(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	from, err := time.ParseInLocation(riskengine.DayKeyFormat, strings.TrimSpace(c.Query("from")), time.UTC)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid from", nil)
		return
	}
	to, err := time.ParseInLocation(riskengine.DayKeyFormat, strings.TrimSpace(c.Query("to")), time.UTC)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid to", nil)
		return
	}
	if to.Before(from) {
		Error(c, http.StatusBadRequest, "to is before from", nil)
		return
	}
	stats, err := h.Repo.ListDisciplineDayStats(c.Request.Context(), ownerID(c), from, to)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, stats, map[string]any{"days": len(stats)})
}
