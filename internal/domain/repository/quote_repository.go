package repository

import "github.com/jhoicas/Lubriportal-api/internal/domain/entity"

// QuoteRepository define el puerto del store de cotizaciones (DIP).
type QuoteRepository interface {
	Create(quote *entity.QuoteRequest) error
	GetByID(id string) (*entity.QuoteRequest, error)
	Update(quote *entity.QuoteRequest) error
	ListByCustomer(customerID string) ([]*entity.QuoteRequest, error)
	List() ([]*entity.QuoteRequest, error)
}
