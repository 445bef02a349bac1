package entity

import "time"

// Estados derivados de stock por bodega.
const (
	InventoryStatusInStock    = "in-stock"
	InventoryStatusLowStock   = "low-stock"
	InventoryStatusOutOfStock = "out-of-stock"
)

// InventoryLevel nivel de inventario de un ítem en una bodega.
// Derivado: Available = OnHand − Committed.
type InventoryLevel struct {
	ItemCode      string    `json:"item_code"`
	WarehouseCode string    `json:"warehouse_code"`
	OnHand        int       `json:"on_hand"`
	Committed     int       `json:"committed"`
	OnOrder       int       `json:"on_order"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Available unidades disponibles para comprometer.
func (l InventoryLevel) Available() int {
	return l.OnHand - l.Committed
}
