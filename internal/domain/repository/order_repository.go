package repository

import "github.com/jhoicas/Lubriportal-api/internal/domain/entity"

// OrderRepository define el puerto de pedidos consolidados (DIP).
// Los backorders solo entran por siembra del mock, nunca por los use cases.
type OrderRepository interface {
	Create(order *entity.ConsolidatedOrder) error
	GetByID(id string) (*entity.ConsolidatedOrder, error)
	ListByCustomer(customerID string) ([]*entity.ConsolidatedOrder, error)
	List() ([]*entity.ConsolidatedOrder, error)
}
