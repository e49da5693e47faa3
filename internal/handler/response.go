package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tradingnotex/internal/riskengine"
)

type apiResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func Ok(c *gin.Context, data any, meta map[string]any) {
	c.JSON(http.StatusOK, apiResponse{
		Code:    0,
		Message: "ok",
		Data:    data,
		Meta:    meta,
	})
}

func Error(c *gin.Context, status int, message string, meta map[string]any) {
	c.JSON(status, apiResponse{
		Code:    status,
		Message: message,
		Meta:    meta,
	})
}

// ownerID resolves the request owner from the X-Owner-ID header. Authentication
// lives in front of this service; an absent header means the single local user.
func ownerID(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader("X-Owner-ID")); v != "" {
		return v
	}
	return "local"
}

// engineError maps engine sentinels onto HTTP statuses: bad input is the
// caller's fault, an empty search grid is unprocessable, anything else is a
// storage failure.
func engineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, riskengine.ErrInvalidInput):
		Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, riskengine.ErrInfeasibleSearch):
		Error(c, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		Error(c, http.StatusBadGateway, err.Error(), nil)
	}
}
