package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ak1058/Ai-Recipe-Maker/services"
)

type InventoryController struct {
	inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

// List handles GET /inventory/ and returns items grouped by category.
func (ctl *InventoryController) List(c *gin.Context) {
	grouped, err := ctl.inventory.ListGrouped(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}
