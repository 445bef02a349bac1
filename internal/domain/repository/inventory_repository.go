package repository

import "github.com/jhoicas/Lubriportal-api/internal/domain/entity"

// InventoryRepository define el puerto del espejo de inventario (DIP).
type InventoryRepository interface {
	GetByItemCode(itemCode string) (*entity.InventoryLevel, error)
	List() ([]*entity.InventoryLevel, error)
	ReplaceAll(levels []*entity.InventoryLevel) error
}
