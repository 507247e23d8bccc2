package api

import (
	"errors"
	"fmt"

	"storeops/internal/service"

	"github.com/gin-gonic/gin"
)

type SaveGoalsRequest struct {
	StoreID    string `json:"storeID"`
	MonthStart string `json:"monthStart"`
}

func (m *ApiHandler) saveGoals(c *gin.Context) {
	var requestBody SaveGoalsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	storeID, monthStart, err := parseStoreMonth(requestBody.StoreID, requestBody.MonthStart)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	grid, err := m.GoalService.SaveDraft(storeID, monthStart)
	if errors.Is(err, service.ErrNoDraftOpen) {
		returnErrorJsonCode(err, c, 409)
		return
	} else if err != nil {
		returnErrorJson(fmt.Errorf("failed to save goals: %w", err), c)
		return
	}

	c.JSON(200, draftGridToJson(grid))
}
