package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type ResetEvenSplitRequest struct {
	StoreID    string `json:"storeID"`
	MonthStart string `json:"monthStart"`
}

func (m *ApiHandler) resetEvenSplit(c *gin.Context) {
	var requestBody ResetEvenSplitRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	storeID, monthStart, err := parseStoreMonth(requestBody.StoreID, requestBody.MonthStart)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	grid, err := m.GoalService.ResetEvenSplit(storeID, monthStart)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to reset grid: %w", err), c)
		return
	}

	c.JSON(200, draftGridToJson(grid))
}
