package dto

import "github.com/jhoicas/Lubriportal-api/internal/domain/entity"

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Items []*entity.Product `json:"items"`
	Total int               `json:"total"`
}

// InventoryView nivel de inventario con su estado derivado.
type InventoryView struct {
	entity.InventoryLevel
	Available int    `json:"available"`
	Status    string `json:"status"` // in-stock | low-stock | out-of-stock
}

// InventoryListResponse listado de inventario para el panel de empleado.
type InventoryListResponse struct {
	Items []InventoryView `json:"items"`
	Total int             `json:"total"`
}

// SyncResponse resultado de una sincronización SAP. Fallback true indica que
// la sincronización falló y se conserva el último dataset conocido.
type SyncResponse struct {
	Fallback  bool   `json:"fallback"`
	Products  int    `json:"products"`
	Inventory int    `json:"inventory"`
	Detail    string `json:"detail,omitempty"`
}
