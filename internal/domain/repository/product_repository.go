package repository

import "github.com/jhoicas/Lubriportal-api/internal/domain/entity"

// ProductRepository define el puerto del espejo local de catálogo (DIP).
// ReplaceAll permite que una sincronización SAP sustituya el dataset completo.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	GetByItemCode(itemCode string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ReplaceAll(products []*entity.Product) error
}
