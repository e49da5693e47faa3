package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tradingnotex/internal/config"
	"tradingnotex/internal/models"
	"tradingnotex/internal/repository"
)

type RiskSettingsHandler struct {
	Repo     repository.Repository
	Defaults config.RiskConfig
}

func (h *RiskSettingsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/risk/settings")
	group.GET("", h.get)
	group.PUT("", h.put)
}

type riskSettingsResponse struct {
	OwnerID       string          `json:"owner_id"`
	GoalAmount    decimal.Decimal `json:"goal_amount"`
	MaxLossAmount decimal.Decimal `json:"max_loss_amount"`
	Stored        bool            `json:"stored"`
}

// @Summary Get the owner's goal/loss defaults
// @Tags risk
// @Success 200 {object} apiResponse{data=riskSettingsResponse}
// @Router /api/v1/risk/settings [get]
func (h *RiskSettingsHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	owner := ownerID(c)
	stored, err := h.Repo.GetRiskSettings(c.Request.Context(), owner)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	resp := riskSettingsResponse{
		OwnerID:       owner,
		GoalAmount:    decimal.NewFromFloat(h.Defaults.GoalAmount),
		MaxLossAmount: decimal.NewFromFloat(h.Defaults.MaxLossAmount),
	}
	if stored != nil {
		resp.GoalAmount = stored.GoalAmount
		resp.MaxLossAmount = stored.MaxLossAmount
		resp.Stored = true
	}
	Ok(c, resp, nil)
}

type putRiskSettingsRequest struct {
	GoalAmount    decimal.Decimal `json:"goal_amount"`
	MaxLossAmount decimal.Decimal `json:"max_loss_amount"`
}

// @Summary Store the owner's goal/loss defaults
// @Tags risk
// @Accept json
// @Param request body putRiskSettingsRequest true "positive goal and max-loss amounts"
// @Success 200 {object} apiResponse{data=riskSettingsResponse}
// @Router /api/v1/risk/settings [put]
func (h *RiskSettingsHandler) put(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req putRiskSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	if req.GoalAmount.Sign() <= 0 || req.MaxLossAmount.Sign() <= 0 {
		Error(c, http.StatusBadRequest, "goal and max-loss amounts must be positive", nil)
		return
	}
	owner := ownerID(c)
	item := &models.RiskSettings{
		OwnerID:       owner,
		GoalAmount:    req.GoalAmount,
		MaxLossAmount: req.MaxLossAmount,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := h.Repo.UpsertRiskSettings(c.Request.Context(), item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, riskSettingsResponse{
		OwnerID:       owner,
		GoalAmount:    item.GoalAmount,
		MaxLossAmount: item.MaxLossAmount,
		Stored:        true,
	}, nil)
}
