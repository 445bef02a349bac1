package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lubriportal-api/internal/application/cart"
	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/infrastructure/memory"
	"github.com/jhoicas/Lubriportal-api/pkg/logger"
)

const testOwner = "user-test"

// newCartUseCase arma el caso de uso sobre los repositorios en memoria con el
// catálogo mock sembrado.
func newCartUseCase(t *testing.T) *cart.UseCase {
	t.Helper()
	_, products, inventory, _, carts, _, err := memory.NewSeededStores()
	require.NoError(t, err)
	return cart.NewUseCase(carts, products, inventory, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

// TestAdd_CantidadCeroUsaPedidoMinimo: agregar sin cantidad arranca en el
// pedido mínimo del producto, nunca en cero.
func TestAdd_CantidadCeroUsaPedidoMinimo(t *testing.T) {
	uc := newCartUseCase(t)

	item, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46"}, false)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity, "sin cantidad se usa el MinOrder del producto")
}

// TestAdd_LineaExistenteIncrementa: agregar dos veces el mismo producto suma
// cantidades en una sola línea.
func TestAdd_LineaExistenteIncrementa(t *testing.T) {
	uc := newCartUseCase(t)

	_, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4}, false)
	require.NoError(t, err)
	item, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 2}, false)
	require.NoError(t, err)

	assert.Equal(t, 6, item.Quantity)

	resp, err := uc.Get(testOwner, false)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1, "no deben crearse líneas duplicadas")
}

// TestAdd_OpcionCambiaPrecioYLinea: una presentación distinta es una línea
// distinta con su propio precio.
func TestAdd_OpcionCambiaPrecioYLinea(t *testing.T) {
	uc := newCartUseCase(t)

	base, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4}, false)
	require.NoError(t, err)
	tambor, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4, Option: "Tambor 55 gal"}, false)
	require.NoError(t, err)

	assert.NotEqual(t, base.ID, tambor.ID)
	assert.True(t, tambor.Price.Equal(decimal.RequireFromString("39.90")), "la opción fija su propio precio")

	resp, err := uc.Get(testOwner, false)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

// TestAdd_PrecioNegociadoDeCliente: con customerPricing el producto con precio
// negociado usa ese precio en lugar del precio de lista.
func TestAdd_PrecioNegociadoDeCliente(t *testing.T) {
	uc := newCartUseCase(t)

	item, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4}, true)
	require.NoError(t, err)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("42.50")))
}

func TestAdd_ProductoInexistente(t *testing.T) {
	uc := newCartUseCase(t)
	_, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-nope"}, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity: pedido mínimo y eliminación por cero
// ──────────────────────────────────────────────────────────────────────────────

// TestUpdateQuantity_BajoMinimoSeRechazaYConserva: bajar de MinOrder rechaza la
// actualización y la cantidad anterior queda intacta.
func TestUpdateQuantity_BajoMinimoSeRechazaYConserva(t *testing.T) {
	uc := newCartUseCase(t)

	item, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4}, false)
	require.NoError(t, err)

	err = uc.UpdateQuantity(testOwner, item.ID, 2)
	assert.ErrorIs(t, err, domain.ErrBelowMinOrder)

	resp, err := uc.Get(testOwner, false)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 4, resp.Items[0].Quantity, "la cantidad anterior se conserva tras el rechazo")
}

// TestUpdateQuantity_CeroEliminaLaLinea: cantidad cero es eliminación, no una
// violación del pedido mínimo.
func TestUpdateQuantity_CeroEliminaLaLinea(t *testing.T) {
	uc := newCartUseCase(t)

	item, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-grease-ep2", Quantity: 12}, false)
	require.NoError(t, err)

	require.NoError(t, uc.UpdateQuantity(testOwner, item.ID, 0))

	resp, err := uc.Get(testOwner, false)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestUpdateQuantity_LineaInexistente(t *testing.T) {
	uc := newCartUseCase(t)
	err := uc.UpdateQuantity(testOwner, "no-existe", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get: subtotal, flujo invitado y avisos de envío parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_SubtotalSumaLineas(t *testing.T) {
	uc := newCartUseCase(t)

	// 4 × 45.99 + 2 × 68.40 = 183.96 + 136.80 = 320.76
	_, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4}, false)
	require.NoError(t, err)
	_, err = uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-gear-220", Quantity: 2}, false)
	require.NoError(t, err)

	resp, err := uc.Get(testOwner, false)
	require.NoError(t, err)
	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("320.76")),
		"subtotal esperado 320.76, obtenido %s", resp.Subtotal)
	assert.False(t, resp.QuoteRequired)
}

// TestGet_InvitadoSinCotizarNoTieneSubtotal: en el flujo invitado una línea sin
// cotizar deja el subtotal indefinido (cero) y marca QuoteRequired.
func TestGet_InvitadoSinCotizarNoTieneSubtotal(t *testing.T) {
	uc := newCartUseCase(t)

	_, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4}, false)
	require.NoError(t, err)

	resp, err := uc.Get(testOwner, true)
	require.NoError(t, err)
	assert.True(t, resp.QuoteRequired)
	assert.True(t, resp.Subtotal.IsZero())
}

// TestGet_AvisoDeEnvioParcial: pedir más del disponible genera el aviso
// informativo con el desglose ship-now / backorder, sin bloquear nada.
func TestGet_AvisoDeEnvioParcial(t *testing.T) {
	uc := newCartUseCase(t)

	// LUB-GEAR-220 tiene 24 - 15 = 9 disponibles; pedimos 20.
	_, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-gear-220", Quantity: 20}, false)
	require.NoError(t, err)

	resp, err := uc.Get(testOwner, false)
	require.NoError(t, err)
	require.Len(t, resp.SplitNotices, 1)
	assert.Equal(t, 9, resp.SplitNotices[0].ShipNow)
	assert.Equal(t, 11, resp.SplitNotices[0].Backordered)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout
// ──────────────────────────────────────────────────────────────────────────────

// TestCheckout_DesgloseYVaciado: subtotal + 8% de impuesto, y el carrito queda
// vacío al completar.
func TestCheckout_DesgloseYVaciado(t *testing.T) {
	uc := newCartUseCase(t)

	// 4 × 45.99 = 183.96; impuesto 8% = 14.72 (redondeado); total 198.68.
	_, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4}, false)
	require.NoError(t, err)

	resp, err := uc.Checkout(testOwner, false, dto.CheckoutRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("183.96")))
	assert.True(t, resp.Tax.Equal(decimal.RequireFromString("14.72")))
	assert.True(t, resp.Surcharge.IsZero())
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("198.68")))

	after, err := uc.Get(testOwner, false)
	require.NoError(t, err)
	assert.Empty(t, after.Items, "el checkout vacía el carrito")
}

// TestCheckout_RecargoDeEmergencia: el recargo es fijo y aditivo.
func TestCheckout_RecargoDeEmergencia(t *testing.T) {
	uc := newCartUseCase(t)

	_, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4}, false)
	require.NoError(t, err)

	resp, err := uc.Checkout(testOwner, false, dto.CheckoutRequest{EmergencyDelivery: true})
	require.NoError(t, err)
	assert.True(t, resp.Surcharge.Equal(decimal.NewFromInt(75)))
	// 183.96 + 14.72 + 75 = 273.68
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("273.68")))
}

func TestCheckout_CarritoVacio(t *testing.T) {
	uc := newCartUseCase(t)
	_, err := uc.Checkout(testOwner, false, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCheckout_InvitadoBloqueadoSinCotizar: el invitado no puede pagar líneas
// sin cotizar; el carrito queda intacto.
func TestCheckout_InvitadoBloqueadoSinCotizar(t *testing.T) {
	uc := newCartUseCase(t)

	_, err := uc.Add(testOwner, dto.AddCartItemRequest{ProductID: "prod-hyd-46", Quantity: 4}, false)
	require.NoError(t, err)

	_, err = uc.Checkout(testOwner, true, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrUnquotedCheckout)

	resp, err := uc.Get(testOwner, true)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1, "el carrito no debe vaciarse en un checkout rechazado")
}

// TestCheckout_InvitadoConTodoCotizado: con todas las líneas cotizadas el
// invitado sí completa el checkout, usando el precio cotizado.
func TestCheckout_InvitadoConTodoCotizado(t *testing.T) {
	uc := newCartUseCase(t)

	quoted := decimal.RequireFromString("42.00")
	require.NoError(t, uc.AddQuoted(testOwner, &entity.CartItem{
		ID:          "prod-hyd-46",
		ProductID:   "prod-hyd-46",
		Name:        "Aceite Hidráulico HV 46",
		Price:       quoted,
		Quantity:    5,
		MinOrder:    4,
		IsQuoted:    true,
		QuotedPrice: &quoted,
		FromQuote:   true,
	}))

	resp, err := uc.Checkout(testOwner, true, dto.CheckoutRequest{})
	require.NoError(t, err)
	// 5 × 42.00 = 210.00; impuesto 16.80; total 226.80.
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("226.80")))
}
