package records

import (
	"bonrecords/models"
)

func (r *Repo) AddInventory(it models.InventoryItem) (models.InventoryItem, error) {
	if it.Quantity < 0 {
		return models.InventoryItem{}, ErrInvalidQuantity
	}
	return r.Inventory.Add(it), nil
}

// UpdateInventory edits an item and stamps lastUpdated.
func (r *Repo) UpdateInventory(id int, fn func(*models.InventoryItem) error) (models.InventoryItem, error) {
	today := r.today()
	return r.Inventory.Update(id, func(it *models.InventoryItem) error {
		if err := fn(it); err != nil {
			return err
		}
		if it.Quantity < 0 {
			return ErrInvalidQuantity
		}
		it.LastUpdated = today
		return nil
	})
}

// Restock adds to or removes from an item's quantity. Removal floors at zero.
func (r *Repo) Restock(id int, op string, amount int) (models.InventoryItem, error) {
	if amount <= 0 || (op != models.StockAdd && op != models.StockRemove) {
		return models.InventoryItem{}, ErrInvalidStockOp
	}
	today := r.today()
	return r.Inventory.Update(id, func(it *models.InventoryItem) error {
		it.Quantity = models.ApplyStock(it.Quantity, op, amount)
		it.LastUpdated = today
		return nil
	})
}
