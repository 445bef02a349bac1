package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// AddCartItemRequest entrada para agregar un producto al carrito.
// Si Quantity es cero se usa el pedido mínimo del producto.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=0"`
	Option    string `json:"option" validate:"omitempty,max=100"` // presentación (tambor, caneca...)
}

// UpdateCartItemRequest entrada para cambiar la cantidad de una línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// CartResponse estado del carrito con subtotal y avisos de envío parcial.
// QuoteRequired indica que el subtotal no está definido (flujo invitado con
// líneas sin cotizar) y el checkout está bloqueado.
type CartResponse struct {
	Items         []*entity.CartItem    `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	QuoteRequired bool                  `json:"quote_required"`
	SplitNotices  []*entity.SplitNotice `json:"split_notices,omitempty"`
}

// CheckoutRequest entrada del checkout. EmergencyDelivery agrega el recargo fijo.
type CheckoutRequest struct {
	EmergencyDelivery bool `json:"emergency_delivery"`
}

// CheckoutResponse desglose del checkout. El carrito queda vacío al éxito.
type CheckoutResponse struct {
	Subtotal     decimal.Decimal       `json:"subtotal"`
	Tax          decimal.Decimal       `json:"tax"`
	Surcharge    decimal.Decimal       `json:"surcharge"`
	Total        decimal.Decimal       `json:"total"`
	SplitNotices []*entity.SplitNotice `json:"split_notices,omitempty"`
}
