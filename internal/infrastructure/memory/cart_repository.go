package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// CartRepository carritos en memoria, uno por propietario (usuario autenticado
// o clave de sesión invitada).
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]map[string]*entity.CartItem
}

// NewCartRepository construye el repositorio vacío.
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]map[string]*entity.CartItem)}
}

// Items devuelve las líneas del carrito en orden estable por id.
func (r *CartRepository) Items(ownerID string) ([]*entity.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart := r.carts[ownerID]
	items := make([]*entity.CartItem, 0, len(cart))
	for _, item := range cart {
		clone := *item
		items = append(items, &clone)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// GetItem devuelve una línea o nil si no existe.
func (r *CartRepository) GetItem(ownerID, itemID string) (*entity.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if item, ok := r.carts[ownerID][itemID]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, nil
}

// UpsertItem inserta o reemplaza una línea.
func (r *CartRepository) UpsertItem(ownerID string, item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[ownerID]
	if !ok {
		cart = make(map[string]*entity.CartItem)
		r.carts[ownerID] = cart
	}
	clone := *item
	cart[clone.ID] = &clone
	return nil
}

// RemoveItem elimina una línea; sin error si no existía.
func (r *CartRepository) RemoveItem(ownerID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts[ownerID], itemID)
	return nil
}

// Clear vacía el carrito del propietario.
func (r *CartRepository) Clear(ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, ownerID)
	return nil
}
