package inventory

import "github.com/jhoicas/Lubriportal-api/internal/domain/entity"

// Umbral bajo el cual el stock disponible se reporta como low-stock.
const lowStockThreshold = 10

// StatusFor deriva el estado de stock a partir del disponible (servicio de dominio).
// available <= 0 -> out-of-stock; < 10 -> low-stock; resto -> in-stock.
func StatusFor(available int) string {
	switch {
	case available <= 0:
		return entity.InventoryStatusOutOfStock
	case available < lowStockThreshold:
		return entity.InventoryStatusLowStock
	default:
		return entity.InventoryStatusInStock
	}
}

// StatusOf deriva el estado de un nivel de inventario.
func StatusOf(level entity.InventoryLevel) string {
	return StatusFor(level.Available())
}
