package controllers

import (
	"net/http"

	"bonrecords/app"
	"bonrecords/models"

	"github.com/gin-gonic/gin"
)

type InventoryController struct{ *Entity[models.InventoryItem] }

func NewInventoryController(s *Srv) *InventoryController {
	return &InventoryController{&Entity[models.InventoryItem]{
		Srv:    s,
		col:    s.Repo.Inventory,
		create: ignoreCtx(s.Repo.AddInventory),
		update: s.Repo.UpdateInventory,
	}}
}

// POST /api/inventory/:id/stock {"operation":"add|remove","amount":n}
func (ic *InventoryController) Restock(c *gin.Context) {
	id, ok := paramID(c)
	if !ok || !ic.ready(c, ic.col) {
		return
	}
	var in struct {
		Operation string `json:"operation" binding:"required,oneof=add remove"`
		Amount    int    `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	it, err := ic.Repo.Restock(id, in.Operation, in.Amount)
	if err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}
