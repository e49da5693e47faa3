package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tradingnotex/internal/config"
	"tradingnotex/internal/riskengine"
)

// PartialsHandler serves the pure planning endpoints. Nothing here touches
// storage; both operations are deterministic functions of the request.
type PartialsHandler struct {
	Defaults config.RiskConfig
}

func (h *PartialsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/partials")
	group.POST("/generate", h.generate)
	group.POST("/optimize", h.optimize)
}

type generatePlanRequest struct {
	StopPoints  decimal.Decimal  `json:"stop_points"`
	Contracts   int              `json:"contracts"`
	Direction   string           `json:"direction"`
	Entry       decimal.Decimal  `json:"entry"`
	R1          decimal.Decimal  `json:"r1"`
	R2          decimal.Decimal  `json:"r2"`
	R3          decimal.Decimal  `json:"r3"`
	P1          int              `json:"p1"`
	P2          int              `json:"p2"`
	P3          int              `json:"p3"`
	USDPerPoint *decimal.Decimal `json:"usd_per_point_per_contract"`
}

// @Summary Price out a three-leg partial exit plan
// @Tags partials
// @Accept json
// @Param request body generatePlanRequest true "plan parameters; usd_per_point_per_contract defaults from config"
// @Success 200 {object} apiResponse{data=riskengine.PartialPlan}
// @Router /api/v1/partials/generate [post]
func (h *PartialsHandler) generate(c *gin.Context) {
	var req generatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}

	usdPerPoint := decimal.NewFromFloat(h.Defaults.USDPerPointPerContract)
	if req.USDPerPoint != nil {
		usdPerPoint = *req.USDPerPoint
	}
	plan, err := riskengine.GeneratePlan(riskengine.PlanInput{
		StopPoints:  req.StopPoints,
		Contracts:   req.Contracts,
		Direction:   riskengine.Direction(strings.ToLower(strings.TrimSpace(req.Direction))),
		Entry:       req.Entry,
		R1:          req.R1,
		R2:          req.R2,
		R3:          req.R3,
		P1:          req.P1,
		P2:          req.P2,
		P3:          req.P3,
		USDPerPoint: usdPerPoint,
	})
	if err != nil {
		engineError(c, err)
		return
	}
	Ok(c, plan.Rounded(), nil)
}

type optimizePlanRequest struct {
	StopPoints  decimal.Decimal `json:"stop_points"`
	Contracts   int             `json:"contracts"`
	TargetR     decimal.Decimal `json:"target_r"`
	CurvePreset string          `json:"curve_preset"`
}

// @Summary Grid-search the partial plan with the best expected value
// @Tags partials
// @Accept json
// @Param request body optimizePlanRequest true "search bounds; curve_preset defaults from config"
// @Success 200 {object} apiResponse{data=riskengine.OptimizedPlan}
// @Failure 422 {object} apiResponse "no candidate fits the target R"
// @Router /api/v1/partials/optimize [post]
func (h *PartialsHandler) optimize(c *gin.Context) {
	var req optimizePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}

	preset := strings.ToLower(strings.TrimSpace(req.CurvePreset))
	if preset == "" {
		preset = h.Defaults.CurvePreset
	}
	plan, err := riskengine.Optimize(riskengine.OptimizeInput{
		StopPoints: req.StopPoints,
		Contracts:  req.Contracts,
		TargetR:    req.TargetR,
		Preset:     riskengine.CurvePreset(preset),
	})
	if err != nil {
		engineError(c, err)
		return
	}
	Ok(c, plan.Rounded(), nil)
}
