package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una cotización.
// pending/processing -> quoted (acción de empleado) -> accepted | declined.
// partially_accepted aplica al lote del cliente cuando consolida un subconjunto.
const (
	QuoteStatusPending           = "pending"
	QuoteStatusProcessing        = "processing"
	QuoteStatusQuoted            = "quoted"
	QuoteStatusAccepted          = "accepted"
	QuoteStatusDeclined          = "declined"
	QuoteStatusExpired           = "expired"
	QuoteStatusPartiallyAccepted = "partially_accepted"
)

// QuoteRequest solicitud de cotización de un cliente o invitado.
// Invariante: TotalPrice = Quantity × UnitPrice una vez cotizada.
type QuoteRequest struct {
	ID               string           `json:"id"`
	CustomerID       string           `json:"customer_id"`
	ProductID        string           `json:"product_id"`
	ProductName      string           `json:"product_name"`
	Category         string           `json:"category"`
	Quantity         int              `json:"quantity"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	TotalPrice       decimal.Decimal  `json:"total_price"`
	Requirements     string           `json:"requirements,omitempty"`
	ExpectedDelivery string           `json:"expected_delivery,omitempty"`
	Status           string           `json:"status"`
	RequestDate      time.Time        `json:"request_date"`
	QuoteAmount      *decimal.Decimal `json:"quote_amount,omitempty"`
	ValidUntil       *time.Time       `json:"valid_until,omitempty"`
	Selected         bool             `json:"selected"`
}

// EffectiveStatus devuelve Expired si la cotización venció sin aceptarse.
func (q *QuoteRequest) EffectiveStatus(now time.Time) string {
	if q.Status == QuoteStatusQuoted && q.ValidUntil != nil && now.After(*q.ValidUntil) {
		return QuoteStatusExpired
	}
	return q.Status
}

// Selectable indica si la cotización puede marcarse para consolidar.
// Solo quoted (vigente) es seleccionable; cualquier otro estado es no-op.
func (q *QuoteRequest) Selectable(now time.Time) bool {
	return q.EffectiveStatus(now) == QuoteStatusQuoted
}
