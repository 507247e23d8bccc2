package api

import (
	"errors"
	"fmt"

	"storeops/internal/service"
	"storeops/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type EditCellRequest struct {
	StoreID          string  `json:"storeID"`
	MonthStart       string  `json:"monthStart"`
	GoalDate         string  `json:"goalDate"`
	TransactionsGoal int64   `json:"transactionsGoal"`
	NetSalesGoal     float64 `json:"netSalesGoal"`
}

func (m *ApiHandler) editCell(c *gin.Context) {
	var requestBody EditCellRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	storeID, monthStart, err := parseStoreMonth(requestBody.StoreID, requestBody.MonthStart)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	goalDate, err := util.ParseDate(requestBody.GoalDate)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid goal date '%s': %w", requestBody.GoalDate, err), c, 400)
		return
	}

	grid, err := m.GoalService.EditCell(
		storeID,
		monthStart,
		goalDate,
		requestBody.TransactionsGoal,
		decimal.NewFromFloat(requestBody.NetSalesGoal),
	)
	if errors.Is(err, service.ErrNoDraftOpen) {
		returnErrorJsonCode(err, c, 409)
		return
	} else if err != nil {
		returnErrorJson(fmt.Errorf("failed to edit cell: %w", err), c)
		return
	}

	c.JSON(200, draftGridToJson(grid))
}
