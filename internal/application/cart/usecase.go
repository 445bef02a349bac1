package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/domain/repository"
	"github.com/jhoicas/Lubriportal-api/pkg/logger"
)

// Parámetros fiscales del checkout: impuesto fijo del 8% y recargo fijo de
// $75 por entrega de emergencia (aditivo, lo activa el caller).
var (
	taxRate            = decimal.NewFromFloat(0.08)
	emergencySurcharge = decimal.NewFromInt(75)
)

// UseCase store del carrito: altas, cantidades con pedido mínimo, subtotal y
// checkout. Todas las mutaciones son sincrónicas y atómicas para el caller.
type UseCase struct {
	cartRepo      repository.CartRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	log           *logger.Logger
}

// NewUseCase construye el caso de uso del carrito.
func NewUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository, log *logger.Logger) *UseCase {
	return &UseCase{cartRepo: cartRepo, productRepo: productRepo, inventoryRepo: inventoryRepo, log: log}
}

// Add agrega un producto al carrito. Si ya existe una línea con el mismo id se
// incrementa la cantidad; si no, se agrega. Con Quantity cero se usa el pedido
// mínimo del producto. customerPricing aplica el precio negociado si existe.
func (uc *UseCase) Add(ownerID string, in dto.AddCartItemRequest, customerPricing bool) (*entity.CartItem, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	itemID := product.ID
	price := product.StartingPrice
	if customerPricing && product.CustomerPrice != nil {
		price = *product.CustomerPrice
	}
	if in.Option != "" {
		for _, opt := range product.Options {
			if opt.Label == in.Option {
				itemID = product.ID + ":" + opt.Label
				price = opt.Price
				break
			}
		}
	}

	quantity := in.Quantity
	if quantity <= 0 {
		quantity = product.MinOrder
	}

	existing, err := uc.cartRepo.GetItem(ownerID, itemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += quantity
		if err := uc.cartRepo.UpsertItem(ownerID, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &entity.CartItem{
		ID:             itemID,
		ProductID:      product.ID,
		Name:           product.Name,
		Price:          price,
		Quantity:       quantity,
		Unit:           product.Unit,
		MinOrder:       product.MinOrder,
		AvailableStock: uc.availableFor(product.ItemCode),
	}
	if err := uc.cartRepo.UpsertItem(ownerID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AddQuoted ingresa una línea ya cotizada (handoff cotización→carrito).
// La línea llega con IsQuoted, QuotedPrice y el enlace a su cotización.
func (uc *UseCase) AddQuoted(ownerID string, item *entity.CartItem) error {
	if item.AvailableStock == 0 {
		if product, _ := uc.productRepo.GetByID(item.ProductID); product != nil {
			item.AvailableStock = uc.availableFor(product.ItemCode)
		}
	}
	return uc.cartRepo.UpsertItem(ownerID, item)
}

// UpdateQuantity cambia la cantidad de una línea:
//   - quantity == 0 elimina la línea;
//   - quantity < MinOrder se rechaza con ErrBelowMinOrder y el estado queda intacto;
//   - en otro caso se fija la cantidad.
func (uc *UseCase) UpdateQuantity(ownerID, itemID string, quantity int) error {
	item, err := uc.cartRepo.GetItem(ownerID, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if quantity == 0 {
		return uc.cartRepo.RemoveItem(ownerID, itemID)
	}
	if quantity < item.MinOrder {
		return domain.ErrBelowMinOrder
	}
	item.Quantity = quantity
	return uc.cartRepo.UpsertItem(ownerID, item)
}

// Remove elimina una línea del carrito.
func (uc *UseCase) Remove(ownerID, itemID string) error {
	item, err := uc.cartRepo.GetItem(ownerID, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.cartRepo.RemoveItem(ownerID, itemID)
}

// Get devuelve el carrito con subtotal y avisos de envío parcial. En el flujo
// invitado, si alguna línea no está cotizada el subtotal no está definido
// (QuoteRequired) y el checkout se bloquea.
func (uc *UseCase) Get(ownerID string, guest bool) (*dto.CartResponse, error) {
	items, err := uc.cartRepo.Items(ownerID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CartResponse{
		Items:    items,
		Subtotal: uc.subtotal(items),
	}
	if guest && !allQuoted(items) {
		resp.QuoteRequired = true
		resp.Subtotal = decimal.Zero
	}
	for _, item := range items {
		if notice := entity.SplitNoticeFor(*item); notice != nil {
			resp.SplitNotices = append(resp.SplitNotices, notice)
		}
	}
	return resp, nil
}

// Checkout calcula subtotal + impuesto 8% + recargo opcional y vacía el
// carrito. Es una transición terminal: no hay llamada de red real.
func (uc *UseCase) Checkout(ownerID string, guest bool, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	items, err := uc.cartRepo.Items(ownerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if guest && !allQuoted(items) {
		return nil, domain.ErrUnquotedCheckout
	}

	subtotal := uc.subtotal(items)
	tax := subtotal.Mul(taxRate).Round(2)
	surcharge := decimal.Zero
	if in.EmergencyDelivery {
		surcharge = emergencySurcharge
	}

	resp := &dto.CheckoutResponse{
		Subtotal:  subtotal,
		Tax:       tax,
		Surcharge: surcharge,
		Total:     subtotal.Add(tax).Add(surcharge),
	}
	for _, item := range items {
		if notice := entity.SplitNoticeFor(*item); notice != nil {
			resp.SplitNotices = append(resp.SplitNotices, notice)
		}
	}

	if err := uc.cartRepo.Clear(ownerID); err != nil {
		return nil, err
	}
	uc.log.Info().Str("owner", ownerID).Str("total", resp.Total.String()).Msg("checkout completado")
	return resp, nil
}

func (uc *UseCase) subtotal(items []*entity.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

func (uc *UseCase) availableFor(itemCode string) int {
	level, err := uc.inventoryRepo.GetByItemCode(itemCode)
	if err != nil || level == nil {
		return 0
	}
	return level.Available()
}

func allQuoted(items []*entity.CartItem) bool {
	for _, item := range items {
		if !item.IsQuoted {
			return false
		}
	}
	return true
}
