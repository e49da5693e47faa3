package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tradingnotex/internal/service"
)

type RiskHandler struct {
	Discipline *service.DisciplineService
}

func (h *RiskHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/risk")
	group.POST("/evaluate-day", h.evaluateDay)
	group.POST("/evaluate-range", h.evaluateRange)
}

type evaluateDayRequest struct {
	Day           string           `json:"day"`
	GoalAmount    *decimal.Decimal `json:"goal_amount"`
	MaxLossAmount *decimal.Decimal `json:"max_loss_amount"`
}

// @Summary Replay one day under the goal/loss stopping rule
// @Tags risk
// @Accept json
// @Param request body evaluateDayRequest true "day (YYYY-MM-DD) and optional limit overrides"
// @Success 200 {object} apiResponse{data=riskengine.DayVerdict}
// @Router /api/v1/risk/evaluate-day [post]
func (h *RiskHandler) evaluateDay(c *gin.Context) {
	if h.Discipline == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req evaluateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	verdict, err := h.Discipline.EvaluateDay(c.Request.Context(), ownerID(c), req.Day, req.GoalAmount, req.MaxLossAmount)
	if err != nil {
		engineError(c, err)
		return
	}
	Ok(c, verdict, nil)
}

type evaluateRangeRequest struct {
	Start         string           `json:"start"`
	End           string           `json:"end"`
	GoalAmount    *decimal.Decimal `json:"goal_amount"`
	MaxLossAmount *decimal.Decimal `json:"max_loss_amount"`
}

// @Summary Replay an inclusive day range under the goal/loss stopping rule
// @Tags risk
// @Accept json
// @Param request body evaluateRangeRequest true "start/end (YYYY-MM-DD) and optional limit overrides"
// @Success 200 {object} apiResponse{data=riskengine.RangeVerdict}
// @Router /api/v1/risk/evaluate-range [post]
func (h *RiskHandler) evaluateRange(c *gin.Context) {
	if h.Discipline == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req evaluateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	verdict, err := h.Discipline.EvaluateRange(c.Request.Context(), ownerID(c), req.Start, req.End, req.GoalAmount, req.MaxLossAmount)
	if err != nil {
		engineError(c, err)
		return
	}
	Ok(c, verdict, nil)
}
