package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StoreResponse struct {
	StoreID uuid.UUID `json:"storeID"`
	Name    string    `json:"name"`
	Region  *string   `json:"region"`
}

func (m *ApiHandler) listStores(c *gin.Context) {
	stores, err := m.StoreRepository.ListActive()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list stores: %w", err), c)
		return
	}

	out := []StoreResponse{}
	for _, s := range stores {
		out = append(out, StoreResponse{
			StoreID: s.StoreID,
			Name:    s.Name,
			Region:  s.Region,
		})
	}

	c.JSON(200, out)
}
