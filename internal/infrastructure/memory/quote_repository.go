package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// QuoteRepository cotizaciones en memoria, indexadas por id.
type QuoteRepository struct {
	mu sync.RWMutex
	m  map[string]*entity.QuoteRequest
}

// NewQuoteRepository construye el repositorio vacío.
func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{m: make(map[string]*entity.QuoteRequest)}
}

// Create agrega una cotización.
func (r *QuoteRepository) Create(quote *entity.QuoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[quote.ID]; ok {
		return domain.ErrDuplicate
	}
	clone := *quote
	r.m[clone.ID] = &clone
	return nil
}

// GetByID devuelve la cotización o nil si no existe.
func (r *QuoteRepository) GetByID(id string) (*entity.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if q, ok := r.m[id]; ok {
		clone := *q
		return &clone, nil
	}
	return nil, nil
}

// Update reemplaza la cotización existente.
func (r *QuoteRepository) Update(quote *entity.QuoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[quote.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *quote
	r.m[clone.ID] = &clone
	return nil
}

// ListByCustomer devuelve las cotizaciones de un cliente ordenadas por fecha de solicitud.
func (r *QuoteRepository) ListByCustomer(customerID string) ([]*entity.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var quotes []*entity.QuoteRequest
	for _, q := range r.m {
		if q.CustomerID == customerID {
			clone := *q
			quotes = append(quotes, &clone)
		}
	}
	sortQuotes(quotes)
	return quotes, nil
}

// List devuelve todas las cotizaciones ordenadas por fecha de solicitud.
func (r *QuoteRepository) List() ([]*entity.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quotes := make([]*entity.QuoteRequest, 0, len(r.m))
	for _, q := range r.m {
		clone := *q
		quotes = append(quotes, &clone)
	}
	sortQuotes(quotes)
	return quotes, nil
}

func sortQuotes(quotes []*entity.QuoteRequest) {
	sort.Slice(quotes, func(i, j int) bool {
		if quotes[i].RequestDate.Equal(quotes[j].RequestDate) {
			return quotes[i].ID < quotes[j].ID
		}
		return quotes[i].RequestDate.Before(quotes[j].RequestDate)
	})
}
