package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// OrderRepository pedidos consolidados en memoria. Los backorders entran solo
// por siembra.
type OrderRepository struct {
	mu sync.RWMutex
	m  map[string]*entity.ConsolidatedOrder
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{m: make(map[string]*entity.ConsolidatedOrder)}
}

// Create agrega un pedido.
func (r *OrderRepository) Create(order *entity.ConsolidatedOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[order.ID]; ok {
		return domain.ErrDuplicate
	}
	clone := *order
	clone.Lines = append([]entity.OrderLine(nil), order.Lines...)
	r.m[clone.ID] = &clone
	return nil
}

// GetByID devuelve el pedido o nil si no existe.
func (r *OrderRepository) GetByID(id string) (*entity.ConsolidatedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if o, ok := r.m[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, nil
}

// ListByCustomer devuelve los pedidos de un cliente ordenados por fecha.
func (r *OrderRepository) ListByCustomer(customerID string) ([]*entity.ConsolidatedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var orders []*entity.ConsolidatedOrder
	for _, o := range r.m {
		if o.CustomerID == customerID {
			orders = append(orders, cloneOrder(o))
		}
	}
	sortOrders(orders)
	return orders, nil
}

// List devuelve todos los pedidos ordenados por fecha.
func (r *OrderRepository) List() ([]*entity.ConsolidatedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]*entity.ConsolidatedOrder, 0, len(r.m))
	for _, o := range r.m {
		orders = append(orders, cloneOrder(o))
	}
	sortOrders(orders)
	return orders, nil
}

func cloneOrder(o *entity.ConsolidatedOrder) *entity.ConsolidatedOrder {
	clone := *o
	clone.Lines = append([]entity.OrderLine(nil), o.Lines...)
	return &clone
}

func sortOrders(orders []*entity.ConsolidatedOrder) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID < orders[j].ID
		}
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
}
