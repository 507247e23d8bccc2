package api

import (
	"errors"
	"fmt"

	"storeops/internal"
	"storeops/internal/service"

	"github.com/gin-gonic/gin"
)

type RunSuggestionRequest struct {
	StoreID         string `json:"storeID"`
	MonthStart      string `json:"monthStart"`
	ClosedDatesText string `json:"closedDatesText"`
	// index 0 = Sunday; non-positive entries are coerced to 1.0
	DowMultipliers [7]float64 `json:"dowMultipliers"`
}

func (m *ApiHandler) runSuggestion(c *gin.Context) {
	var requestBody RunSuggestionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	storeID, monthStart, err := parseStoreMonth(requestBody.StoreID, requestBody.MonthStart)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	grid, err := m.GoalService.RunSuggestion(contextWithLogger(c), service.RunSuggestionInput{
		StoreID:         storeID,
		MonthStart:      monthStart,
		ClosedDatesText: requestBody.ClosedDatesText,
		DowMultipliers:  requestBody.DowMultipliers,
	})
	if errors.Is(err, service.ErrNoMonthlyTarget) || errors.Is(err, internal.ErrTargetNotRunnable) {
		returnErrorJsonCode(err, c, 422)
		return
	} else if err != nil {
		returnErrorJson(fmt.Errorf("failed to run suggestion: %w", err), c)
		return
	}

	c.JSON(200, draftGridToJson(grid))
}
