package api

import (
	"errors"
	"fmt"

	"storeops/internal/service"

	"github.com/gin-gonic/gin"
)

type PublishGoalsRequest struct {
	StoreID    string `json:"storeID"`
	MonthStart string `json:"monthStart"`
}

// Publishing makes the month's goals visible to store-facing views,
// so it is gated to admins.
func (m *ApiHandler) publishGoals(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var requestBody PublishGoalsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	storeID, monthStart, err := parseStoreMonth(requestBody.StoreID, requestBody.MonthStart)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	grid, err := m.GoalService.Publish(storeID, monthStart)
	if errors.Is(err, service.ErrNoDraftOpen) {
		returnErrorJsonCode(err, c, 409)
		return
	} else if err != nil {
		returnErrorJson(fmt.Errorf("failed to publish goals: %w", err), c)
		return
	}

	c.JSON(200, draftGridToJson(grid))
}
