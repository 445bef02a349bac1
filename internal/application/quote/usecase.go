package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appcart "github.com/jhoicas/Lubriportal-api/internal/application/cart"
	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/domain/repository"
	"github.com/jhoicas/Lubriportal-api/pkg/logger"
)

// UseCase store de cotizaciones: solicitud, cotización por empleado, selección
// y consolidación en pedidos. Las cotizaciones consumidas pasan al carrito del
// propietario (handoff cotización→carrito).
type UseCase struct {
	quoteRepo   repository.QuoteRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartUC      *appcart.UseCase
	guestLimit  int // productos únicos consolidables por un invitado
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de cotizaciones.
func NewUseCase(
	quoteRepo repository.QuoteRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartUC *appcart.UseCase,
	guestLimit int,
	log *logger.Logger,
) *UseCase {
	if guestLimit <= 0 {
		guestLimit = 5
	}
	return &UseCase{
		quoteRepo:   quoteRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartUC:      cartUC,
		guestLimit:  guestLimit,
		log:         log,
	}
}

// Request crea una solicitud de cotización en estado pending, sin monto.
func (uc *UseCase) Request(customerID string, in dto.CreateQuoteRequest) (*entity.QuoteRequest, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	quote := &entity.QuoteRequest{
		ID:               uuid.New().String(),
		CustomerID:       customerID,
		ProductID:        product.ID,
		ProductName:      product.Name,
		Category:         product.Category,
		Quantity:         in.Quantity,
		Requirements:     in.Requirements,
		ExpectedDelivery: in.ExpectedDelivery,
		Status:           entity.QuoteStatusPending,
		RequestDate:      time.Now(),
	}
	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Price acción de empleado: transiciona pending/processing -> quoted, fija el
// monto y deriva UnitPrice = monto / cantidad (redondeo a 2 decimales).
func (uc *UseCase) Price(actor *entity.User, quoteID string, in dto.PriceQuoteRequest) (*entity.QuoteRequest, error) {
	if !actor.HasPermission(entity.PermPriceQuotes) {
		return nil, domain.ErrForbidden
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.Status != entity.QuoteStatusPending && quote.Status != entity.QuoteStatusProcessing {
		return nil, domain.ErrConflict
	}

	amount := in.Amount
	unit := amount.Div(decimal.NewFromInt(int64(quote.Quantity))).Round(2)
	validUntil := in.ValidUntil

	quote.Status = entity.QuoteStatusQuoted
	quote.QuoteAmount = &amount
	quote.UnitPrice = unit
	quote.TotalPrice = unit.Mul(decimal.NewFromInt(int64(quote.Quantity)))
	quote.ValidUntil = &validUntil
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	uc.log.Info().Str("quote", quote.ID).Str("amount", amount.String()).Msg("cotización emitida")
	return quote, nil
}

// Decline rechaza una cotización pendiente o emitida.
func (uc *UseCase) Decline(quoteID string) (*entity.QuoteRequest, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	switch quote.Status {
	case entity.QuoteStatusPending, entity.QuoteStatusProcessing, entity.QuoteStatusQuoted:
		quote.Status = entity.QuoteStatusDeclined
		quote.Selected = false
	default:
		return nil, domain.ErrConflict
	}
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Toggle alterna la selección de una cotización. Solo los estados
// seleccionables (quoted vigente) mutan; el resto es no-op con estado intacto.
// Un invitado no puede dejar seleccionados más productos únicos que el límite
// del portal: el intento se rechaza sin mutar estado.
func (uc *UseCase) Toggle(role, customerID, quoteID string) (*dto.ToggleResponse, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.CustomerID != customerID && role != entity.RoleEmployee && role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !quote.Selectable(time.Now()) {
		return &dto.ToggleResponse{Quote: quote, NoOp: true}, nil
	}

	if !quote.Selected && role == entity.RoleGuest {
		selected, err := uc.selectedFor(quote.CustomerID)
		if err != nil {
			return nil, err
		}
		unique := uniqueProducts(append(selected, quote))
		if unique > uc.guestLimit {
			return nil, domain.ErrGuestQuoteLimit
		}
	}

	quote.Selected = !quote.Selected
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	return &dto.ToggleResponse{Quote: quote}, nil
}

// Consolidate toma las cotizaciones seleccionadas del cliente y crea un único
// pedido con total = Σ TotalPrice, entregando las líneas cotizadas al carrito.
// Las consumidas quedan accepted; si quedaron cotizaciones vigentes sin
// seleccionar, el lote se reporta partially_accepted.
func (uc *UseCase) Consolidate(role, customerID string, in dto.ConsolidateRequest) (*dto.ConsolidateResponse, error) {
	quotes, err := uc.quoteRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var selected, remaining []*entity.QuoteRequest
	for _, q := range quotes {
		if !q.Selectable(now) {
			continue
		}
		if q.Selected {
			selected = append(selected, q)
		} else {
			remaining = append(remaining, q)
		}
	}
	if len(selected) == 0 {
		return nil, domain.ErrNoQuotesSelected
	}
	if role == entity.RoleGuest && uniqueProducts(selected) > uc.guestLimit {
		return nil, domain.ErrGuestQuoteLimit
	}

	order := &entity.ConsolidatedOrder{
		ID:             uuid.New().String(),
		CustomerID:     customerID,
		Total:          decimal.Zero,
		RelatedOrderID: in.RelatedOrderID,
		Status:         entity.OrderStatusConsolidated,
		CreatedAt:      now,
	}
	for _, q := range selected {
		order.Lines = append(order.Lines, entity.OrderLine{
			QuoteID:     q.ID,
			ProductID:   q.ProductID,
			ProductName: q.ProductName,
			Quantity:    q.Quantity,
			UnitPrice:   q.UnitPrice,
			TotalPrice:  q.TotalPrice,
		})
		order.Total = order.Total.Add(q.TotalPrice)
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	cartItems := 0
	for _, q := range selected {
		q.Status = entity.QuoteStatusAccepted
		q.Selected = false
		if err := uc.quoteRepo.Update(q); err != nil {
			return nil, err
		}
		if err := uc.handoffToCart(customerID, q); err != nil {
			// El pedido ya existe; un fallo del handoff se degrada a aviso.
			uc.log.Warn().Err(err).Str("quote", q.ID).Msg("handoff cotización→carrito falló")
			continue
		}
		cartItems++
	}

	batch := entity.QuoteStatusAccepted
	if len(remaining) > 0 {
		batch = entity.QuoteStatusPartiallyAccepted
	}
	uc.log.Info().
		Str("order", order.ID).
		Str("customer", customerID).
		Int("lines", len(order.Lines)).
		Str("batch", batch).
		Msg("cotizaciones consolidadas")

	return &dto.ConsolidateResponse{Order: order, BatchStatus: batch, CartItems: cartItems}, nil
}

// List devuelve las cotizaciones del cliente (o todas, para empleados) con el
// estado efectivo calculado: las vencidas se reportan expired y no son
// seleccionables.
func (uc *UseCase) List(customerID string, all bool) (*dto.QuoteListResponse, error) {
	var quotes []*entity.QuoteRequest
	var err error
	if all {
		quotes, err = uc.quoteRepo.List()
	} else {
		quotes, err = uc.quoteRepo.ListByCustomer(customerID)
	}
	if err != nil {
		return nil, err
	}
	now := time.Now()
	resp := &dto.QuoteListResponse{Items: make([]dto.QuoteView, 0, len(quotes))}
	for _, q := range quotes {
		resp.Items = append(resp.Items, dto.QuoteView{QuoteRequest: *q, EffectiveStatus: q.EffectiveStatus(now)})
	}
	resp.Total = len(resp.Items)
	return resp, nil
}

func (uc *UseCase) handoffToCart(customerID string, q *entity.QuoteRequest) error {
	quoted := q.UnitPrice
	item := &entity.CartItem{
		ID:          q.ProductID,
		ProductID:   q.ProductID,
		Name:        q.ProductName,
		Price:       q.UnitPrice,
		Quantity:    q.Quantity,
		IsQuoted:    true,
		QuotedPrice: &quoted,
		FromQuote:   true,
		QuoteID:     q.ID,
	}
	if product, _ := uc.productRepo.GetByID(q.ProductID); product != nil {
		item.Unit = product.Unit
		item.MinOrder = product.MinOrder
	}
	return uc.cartUC.AddQuoted(customerID, item)
}

func (uc *UseCase) selectedFor(customerID string) ([]*entity.QuoteRequest, error) {
	quotes, err := uc.quoteRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	var selected []*entity.QuoteRequest
	for _, q := range quotes {
		if q.Selected && q.Selectable(now) {
			selected = append(selected, q)
		}
	}
	return selected, nil
}

func uniqueProducts(quotes []*entity.QuoteRequest) int {
	seen := make(map[string]struct{}, len(quotes))
	for _, q := range quotes {
		seen[q.ProductID] = struct{}{}
	}
	return len(seen)
}
