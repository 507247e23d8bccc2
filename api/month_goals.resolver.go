package api

import (
	"fmt"
	"time"

	"storeops/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MonthGoalsRequest struct {
	StoreID    string `json:"storeID"`
	MonthStart string `json:"monthStart"`
}

func (m *ApiHandler) monthGoals(c *gin.Context) {
	var requestBody MonthGoalsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	storeID, monthStart, err := parseStoreMonth(requestBody.StoreID, requestBody.MonthStart)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	grid, err := m.GoalService.OpenMonth(storeID, monthStart)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to open month: %w", err), c)
		return
	}

	c.JSON(200, draftGridToJson(grid))
}

func parseStoreMonth(storeIDStr, monthStartStr string) (uuid.UUID, time.Time, error) {
	storeID, err := uuid.Parse(storeIDStr)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("no store selected: %w", err)
	}
	monthStart, err := util.ParseDate(monthStartStr)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("invalid month start '%s': %w", monthStartStr, err)
	}
	return storeID, util.MonthStart(monthStart), nil
}
