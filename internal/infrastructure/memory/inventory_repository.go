package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// InventoryRepository espejo local de niveles de inventario, indexado por
// código de ítem.
type InventoryRepository struct {
	mu sync.RWMutex
	m  map[string]*entity.InventoryLevel
}

// NewInventoryRepository construye el repositorio vacío.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{m: make(map[string]*entity.InventoryLevel)}
}

// GetByItemCode devuelve el nivel o nil si no existe.
func (r *InventoryRepository) GetByItemCode(itemCode string) (*entity.InventoryLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if l, ok := r.m[itemCode]; ok {
		clone := *l
		return &clone, nil
	}
	return nil, nil
}

// List devuelve los niveles en orden estable por código de ítem.
func (r *InventoryRepository) List() ([]*entity.InventoryLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	levels := make([]*entity.InventoryLevel, 0, len(r.m))
	for _, l := range r.m {
		clone := *l
		levels = append(levels, &clone)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].ItemCode < levels[j].ItemCode })
	return levels, nil
}

// ReplaceAll sustituye el dataset completo (sincronización SAP).
func (r *InventoryRepository) ReplaceAll(levels []*entity.InventoryLevel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]*entity.InventoryLevel, len(levels))
	for _, l := range levels {
		clone := *l
		r.m[clone.ItemCode] = &clone
	}
	return nil
}
