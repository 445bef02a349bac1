package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido consolidado. Los backorders existen solo como registros
// pre-sembrados del mock; ningún store los crea dinámicamente.
const (
	OrderStatusConsolidated = "consolidated"
	OrderStatusBackordered  = "backordered"
)

// OrderLine línea de un pedido consolidado, originada en una cotización aceptada.
type OrderLine struct {
	QuoteID     string          `json:"quote_id,omitempty"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Backordered int             `json:"backordered,omitempty"` // solo en registros sembrados
}

// ConsolidatedOrder pedido resultante de consolidar cotizaciones seleccionadas
// de un cliente. Total = Σ TotalPrice de las líneas.
type ConsolidatedOrder struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	Lines          []OrderLine     `json:"lines"`
	Total          decimal.Decimal `json:"total"`
	RelatedOrderID string          `json:"related_order_id,omitempty"` // enlace opcional a un backorder
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}
