package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// ProductRepository espejo local del catálogo. ReplaceAll permite que un sync
// SAP sustituya el dataset completo de forma atómica.
type ProductRepository struct {
	mu         sync.RWMutex
	byID       map[string]*entity.Product
	byItemCode map[string]*entity.Product
	order      []string // ids ordenados, para listados estables
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepository {
	r := &ProductRepository{}
	r.reset(nil)
	return r
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.byID[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

// GetByItemCode devuelve el producto o nil si no existe.
func (r *ProductRepository) GetByItemCode(itemCode string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.byItemCode[itemCode]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

// List devuelve el catálogo en orden estable por id.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.byID[id]
		products = append(products, &clone)
	}
	return products, nil
}

// ReplaceAll sustituye el dataset completo (sincronización SAP).
func (r *ProductRepository) ReplaceAll(products []*entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset(products)
	return nil
}

func (r *ProductRepository) reset(products []*entity.Product) {
	r.byID = make(map[string]*entity.Product, len(products))
	r.byItemCode = make(map[string]*entity.Product, len(products))
	r.order = r.order[:0]
	for _, p := range products {
		clone := *p
		r.byID[clone.ID] = &clone
		r.byItemCode[clone.ItemCode] = &clone
		r.order = append(r.order, clone.ID)
	}
	sort.Strings(r.order)
}
