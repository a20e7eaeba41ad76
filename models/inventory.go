package models

import "strings"

const (
	InStock    = "In Stock"
	LowStock   = "Low Stock"
	OutOfStock = "Out of Stock"
)

// LowStockThreshold is the first quantity considered fully stocked.
const LowStockThreshold = 100

// Restock operations.
const (
	StockAdd    = "add"
	StockRemove = "remove"
)

type InventoryItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit" binding:"required"`
	Status      string `json:"status"`
	LastUpdated string `json:"lastUpdated"`
}

// StockStatus derives the stock status from a quantity.
func StockStatus(quantity int) string {
	switch {
	case quantity <= 0:
		return OutOfStock
	case quantity < LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

// ApplyStock returns the quantity after a restock operation. Removal floors at zero.
func ApplyStock(quantity int, op string, amount int) int {
	if op == StockRemove {
		return max(0, quantity-amount)
	}
	return quantity + amount
}

func (i InventoryItem) Matches(q string) bool {
	return strings.Contains(strings.ToLower(i.Name), q) ||
		strings.Contains(strings.ToLower(i.Category), q) ||
		strings.Contains(strings.ToLower(i.Status), q)
}
