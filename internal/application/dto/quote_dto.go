package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// CreateQuoteRequest entrada para solicitar una cotización.
type CreateQuoteRequest struct {
	ProductID        string `json:"product_id" validate:"required"`
	Quantity         int    `json:"quantity" validate:"required,min=1"`
	Requirements     string `json:"requirements" validate:"max=2000"`
	ExpectedDelivery string `json:"expected_delivery" validate:"max=100"`
}

// PriceQuoteRequest entrada del empleado para cotizar: monto total y vigencia.
type PriceQuoteRequest struct {
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	ValidUntil time.Time       `json:"valid_until" validate:"required"`
}

// ConsolidateRequest entrada para consolidar las cotizaciones seleccionadas.
// RelatedOrderID enlaza opcionalmente un backorder existente.
type ConsolidateRequest struct {
	RelatedOrderID string `json:"related_order_id" validate:"omitempty"`
}

// ToggleResponse resultado de alternar la selección de una cotización.
// NoOp indica que el estado no era seleccionable y nada cambió.
type ToggleResponse struct {
	Quote *entity.QuoteRequest `json:"quote"`
	NoOp  bool                 `json:"no_op"`
}

// ConsolidateResponse resultado de la consolidación.
type ConsolidateResponse struct {
	Order       *entity.ConsolidatedOrder `json:"order"`
	BatchStatus string                    `json:"batch_status"` // accepted | partially_accepted
	CartItems   int                       `json:"cart_items"`   // líneas entregadas al carrito
}

// QuoteListResponse listado de cotizaciones con estado efectivo (vencimiento aplicado).
type QuoteListResponse struct {
	Items []QuoteView `json:"items"`
	Total int         `json:"total"`
}

// QuoteView cotización con el estado efectivo calculado al momento de la consulta.
type QuoteView struct {
	entity.QuoteRequest
	EffectiveStatus string `json:"effective_status"`
}
