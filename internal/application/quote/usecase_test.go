package quote_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcart "github.com/jhoicas/Lubriportal-api/internal/application/cart"
	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/application/quote"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/infrastructure/memory"
	"github.com/jhoicas/Lubriportal-api/pkg/logger"
)

const testCustomer = "user-test"

// fixture arma el caso de uso de cotizaciones (y su carrito) sobre los
// repositorios en memoria sembrados. guestLimit se puede reducir para probar
// el tope del portal invitado sin necesitar seis productos.
type fixture struct {
	quoteUC  *quote.UseCase
	cartUC   *appcart.UseCase
	employee *entity.User
}

func newFixture(t *testing.T, guestLimit int) *fixture {
	t.Helper()
	users, products, inventory, quotes, carts, orders, err := memory.NewSeededStores()
	require.NoError(t, err)

	cartUC := appcart.NewUseCase(carts, products, inventory, logger.Nop())
	quoteUC := quote.NewUseCase(quotes, orders, products, cartUC, guestLimit, logger.Nop())

	employee, err := users.GetByUsername(memory.SeedEmployeeUsername)
	require.NoError(t, err)
	require.NotNil(t, employee)

	return &fixture{quoteUC: quoteUC, cartUC: cartUC, employee: employee}
}

// requestAndPrice crea una solicitud y la cotiza con el monto total dado.
func (f *fixture) requestAndPrice(t *testing.T, productID string, qty int, amount string) *entity.QuoteRequest {
	t.Helper()
	q, err := f.quoteUC.Request(testCustomer, dto.CreateQuoteRequest{ProductID: productID, Quantity: qty})
	require.NoError(t, err)
	q, err = f.quoteUC.Price(f.employee, q.ID, dto.PriceQuoteRequest{
		Amount:     decimal.RequireFromString(amount),
		ValidUntil: time.Now().Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return q
}

// ──────────────────────────────────────────────────────────────────────────────
// Request y Price
// ──────────────────────────────────────────────────────────────────────────────

func TestRequest_NacePendienteSinMonto(t *testing.T) {
	f := newFixture(t, 5)

	q, err := f.quoteUC.Request(testCustomer, dto.CreateQuoteRequest{ProductID: "prod-hyd-46", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusPending, q.Status)
	assert.Nil(t, q.QuoteAmount, "una solicitud recién creada no tiene monto")
}

// TestPrice_DerivaPrecioUnitario: monto 210 para 5 unidades produce unitario 42
// y total 210.
func TestPrice_DerivaPrecioUnitario(t *testing.T) {
	f := newFixture(t, 5)

	q := f.requestAndPrice(t, "prod-hyd-46", 5, "210.00")
	assert.Equal(t, entity.QuoteStatusQuoted, q.Status)
	assert.True(t, q.UnitPrice.Equal(decimal.RequireFromString("42.00")))
	assert.True(t, q.TotalPrice.Equal(decimal.RequireFromString("210.00")))
	require.NotNil(t, q.ValidUntil)
}

func TestPrice_SinPermisoSeRechaza(t *testing.T) {
	f := newFixture(t, 5)
	q, err := f.quoteUC.Request(testCustomer, dto.CreateQuoteRequest{ProductID: "prod-hyd-46", Quantity: 5})
	require.NoError(t, err)

	cliente := &entity.User{Role: entity.RoleCustomer, Permissions: []string{entity.PermRequestQuote}}
	_, err = f.quoteUC.Price(cliente, q.ID, dto.PriceQuoteRequest{
		Amount:     decimal.RequireFromString("100.00"),
		ValidUntil: time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// TestPrice_SoloDesdePendiente: cotizar dos veces es un conflicto de estado.
func TestPrice_SoloDesdePendiente(t *testing.T) {
	f := newFixture(t, 5)
	q := f.requestAndPrice(t, "prod-hyd-46", 5, "210.00")

	_, err := f.quoteUC.Price(f.employee, q.ID, dto.PriceQuoteRequest{
		Amount:     decimal.RequireFromString("300.00"),
		ValidUntil: time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Toggle
// ──────────────────────────────────────────────────────────────────────────────

func TestToggle_SeleccionaYDeselecciona(t *testing.T) {
	f := newFixture(t, 5)
	q := f.requestAndPrice(t, "prod-hyd-46", 5, "210.00")

	out, err := f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q.ID)
	require.NoError(t, err)
	assert.True(t, out.Quote.Selected)
	assert.False(t, out.NoOp)

	out, err = f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q.ID)
	require.NoError(t, err)
	assert.False(t, out.Quote.Selected)
}

// TestToggle_PendienteEsNoOp: una cotización sin emitir no es seleccionable;
// el toggle no es un error pero tampoco muta nada.
func TestToggle_PendienteEsNoOp(t *testing.T) {
	f := newFixture(t, 5)
	q, err := f.quoteUC.Request(testCustomer, dto.CreateQuoteRequest{ProductID: "prod-hyd-46", Quantity: 5})
	require.NoError(t, err)

	out, err := f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q.ID)
	require.NoError(t, err)
	assert.True(t, out.NoOp)
	assert.False(t, out.Quote.Selected)
}

func TestToggle_CotizacionAjena(t *testing.T) {
	f := newFixture(t, 5)
	q := f.requestAndPrice(t, "prod-hyd-46", 5, "210.00")

	_, err := f.quoteUC.Toggle(entity.RoleCustomer, "otro-cliente", q.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// TestToggle_LimiteDeInvitado: con límite 2, el invitado no puede dejar
// seleccionado un tercer producto único; el intento no muta estado.
func TestToggle_LimiteDeInvitado(t *testing.T) {
	f := newFixture(t, 2)

	q1 := f.requestAndPrice(t, "prod-hyd-46", 4, "160.00")
	q2 := f.requestAndPrice(t, "prod-gear-220", 2, "130.00")
	q3 := f.requestAndPrice(t, "prod-grease-ep2", 12, "144.00")

	_, err := f.quoteUC.Toggle(entity.RoleGuest, testCustomer, q1.ID)
	require.NoError(t, err)
	_, err = f.quoteUC.Toggle(entity.RoleGuest, testCustomer, q2.ID)
	require.NoError(t, err)

	_, err = f.quoteUC.Toggle(entity.RoleGuest, testCustomer, q3.ID)
	assert.ErrorIs(t, err, domain.ErrGuestQuoteLimit)

	// El tercer producto sigue sin seleccionar.
	list, err := f.quoteUC.List(testCustomer, false)
	require.NoError(t, err)
	for _, v := range list.Items {
		if v.ID == q3.ID {
			assert.False(t, v.Selected)
		}
	}
}

// TestToggle_MismoProductoNoSumaAlLimite: dos cotizaciones del mismo producto
// cuentan como un único producto para el tope del invitado.
func TestToggle_MismoProductoNoSumaAlLimite(t *testing.T) {
	f := newFixture(t, 1)

	q1 := f.requestAndPrice(t, "prod-hyd-46", 4, "160.00")
	q2 := f.requestAndPrice(t, "prod-hyd-46", 8, "320.00")

	_, err := f.quoteUC.Toggle(entity.RoleGuest, testCustomer, q1.ID)
	require.NoError(t, err)
	_, err = f.quoteUC.Toggle(entity.RoleGuest, testCustomer, q2.ID)
	assert.NoError(t, err, "el mismo producto no debe exceder el límite de únicos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consolidate
// ──────────────────────────────────────────────────────────────────────────────

func TestConsolidate_SinSeleccionadas(t *testing.T) {
	f := newFixture(t, 5)
	f.requestAndPrice(t, "prod-hyd-46", 5, "210.00")

	_, err := f.quoteUC.Consolidate(entity.RoleCustomer, testCustomer, dto.ConsolidateRequest{})
	assert.ErrorIs(t, err, domain.ErrNoQuotesSelected)
}

// TestConsolidate_FlujoCompleto: dos cotizaciones seleccionadas producen un
// pedido con total Σ TotalPrice, las consumidas quedan accepted y sus líneas
// se entregan al carrito con el precio cotizado.
func TestConsolidate_FlujoCompleto(t *testing.T) {
	f := newFixture(t, 5)

	q1 := f.requestAndPrice(t, "prod-hyd-46", 5, "210.00")
	q2 := f.requestAndPrice(t, "prod-gear-220", 2, "130.00")

	_, err := f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q1.ID)
	require.NoError(t, err)
	_, err = f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q2.ID)
	require.NoError(t, err)

	out, err := f.quoteUC.Consolidate(entity.RoleCustomer, testCustomer, dto.ConsolidateRequest{})
	require.NoError(t, err)

	require.Len(t, out.Order.Lines, 2)
	assert.True(t, out.Order.Total.Equal(decimal.RequireFromString("340.00")))
	assert.Equal(t, entity.OrderStatusConsolidated, out.Order.Status)
	assert.Equal(t, entity.QuoteStatusAccepted, out.BatchStatus, "sin cotizaciones vigentes restantes el lote es accepted")
	assert.Equal(t, 2, out.CartItems)

	// Las líneas llegaron al carrito ya cotizadas, con el unitario derivado.
	cart, err := f.cartUC.Get(testCustomer, true)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.False(t, cart.QuoteRequired, "todas las líneas llegan cotizadas")
	for _, item := range cart.Items {
		assert.True(t, item.IsQuoted)
		assert.NotEmpty(t, item.QuoteID)
	}

	// Las consumidas quedan accepted y deseleccionadas.
	list, err := f.quoteUC.List(testCustomer, false)
	require.NoError(t, err)
	for _, v := range list.Items {
		assert.Equal(t, entity.QuoteStatusAccepted, v.Status)
		assert.False(t, v.Selected)
	}
}

// TestConsolidate_ParcialSiQuedanVigentes: si queda una cotización vigente sin
// seleccionar, el lote se reporta partially_accepted (la restante no se toca).
func TestConsolidate_ParcialSiQuedanVigentes(t *testing.T) {
	f := newFixture(t, 5)

	q1 := f.requestAndPrice(t, "prod-hyd-46", 5, "210.00")
	f.requestAndPrice(t, "prod-gear-220", 2, "130.00") // queda sin seleccionar

	_, err := f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q1.ID)
	require.NoError(t, err)

	out, err := f.quoteUC.Consolidate(entity.RoleCustomer, testCustomer, dto.ConsolidateRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusPartiallyAccepted, out.BatchStatus)
	require.Len(t, out.Order.Lines, 1)
}

// TestConsolidate_EnlazaBackorder: el related_order_id se almacena tal cual en
// el pedido consolidado.
func TestConsolidate_EnlazaBackorder(t *testing.T) {
	f := newFixture(t, 5)

	q := f.requestAndPrice(t, "prod-comp-68", 24, "1200.00")
	_, err := f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q.ID)
	require.NoError(t, err)

	out, err := f.quoteUC.Consolidate(entity.RoleCustomer, testCustomer, dto.ConsolidateRequest{
		RelatedOrderID: memory.SeedBackorderID,
	})
	require.NoError(t, err)
	assert.Equal(t, memory.SeedBackorderID, out.Order.RelatedOrderID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vencimiento
// ──────────────────────────────────────────────────────────────────────────────

// TestList_VencidaSeReportaExpired: una cotización emitida con vigencia pasada
// se reporta expired y no es seleccionable.
func TestList_VencidaSeReportaExpired(t *testing.T) {
	f := newFixture(t, 5)

	q, err := f.quoteUC.Request(testCustomer, dto.CreateQuoteRequest{ProductID: "prod-hyd-46", Quantity: 4})
	require.NoError(t, err)
	q, err = f.quoteUC.Price(f.employee, q.ID, dto.PriceQuoteRequest{
		Amount:     decimal.RequireFromString("160.00"),
		ValidUntil: time.Now().Add(-time.Hour), // ya vencida
	})
	require.NoError(t, err)

	list, err := f.quoteUC.List(testCustomer, false)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, entity.QuoteStatusExpired, list.Items[0].EffectiveStatus)
	assert.Equal(t, entity.QuoteStatusQuoted, list.Items[0].Status, "el estado almacenado no se reescribe")

	out, err := f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q.ID)
	require.NoError(t, err)
	assert.True(t, out.NoOp, "una cotización vencida no es seleccionable")
}

// ──────────────────────────────────────────────────────────────────────────────
// Decline
// ──────────────────────────────────────────────────────────────────────────────

func TestDecline_EmitidaSeRechazaYDeselecciona(t *testing.T) {
	f := newFixture(t, 5)
	q := f.requestAndPrice(t, "prod-hyd-46", 5, "210.00")
	_, err := f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q.ID)
	require.NoError(t, err)

	q, err = f.quoteUC.Decline(q.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusDeclined, q.Status)
	assert.False(t, q.Selected)
}

func TestDecline_AceptadaEsConflicto(t *testing.T) {
	f := newFixture(t, 5)
	q := f.requestAndPrice(t, "prod-hyd-46", 5, "210.00")
	_, err := f.quoteUC.Toggle(entity.RoleCustomer, testCustomer, q.ID)
	require.NoError(t, err)
	_, err = f.quoteUC.Consolidate(entity.RoleCustomer, testCustomer, dto.ConsolidateRequest{})
	require.NoError(t, err)

	_, err = f.quoteUC.Decline(q.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
