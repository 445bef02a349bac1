package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito. Invariantes:
//   - Quantity >= MinOrder (una actualización por debajo se rechaza y se
//     conserva la cantidad anterior);
//   - Quantity == 0 elimina la línea;
//   - en el flujo invitado el checkout se bloquea si alguna línea no está cotizada.
type CartItem struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"product_id"`
	Name           string           `json:"name"`
	Price          decimal.Decimal  `json:"price"`
	Quantity       int              `json:"quantity"`
	Unit           string           `json:"unit"`
	MinOrder       int              `json:"min_order"`
	AvailableStock int              `json:"available_stock"`
	IsQuoted       bool             `json:"is_quoted"`
	QuotedPrice    *decimal.Decimal `json:"quoted_price,omitempty"`
	FromQuote      bool             `json:"from_quote,omitempty"`
	QuoteID        string           `json:"quote_id,omitempty"`
}

// LineTotal precio × cantidad de la línea.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SplitNotice aviso informativo de envío parcial: ShipNow unidades salen ya,
// el resto queda en backorder. No bloquea el checkout ni crea registros.
type SplitNotice struct {
	ItemID      string `json:"item_id"`
	ProductName string `json:"product_name"`
	ShipNow     int    `json:"ship_now"`
	Backordered int    `json:"backordered"`
}

// SplitNoticeFor calcula el aviso de envío parcial de una línea, o nil si el
// stock disponible cubre la cantidad pedida.
func SplitNoticeFor(i CartItem) *SplitNotice {
	if i.Quantity <= i.AvailableStock {
		return nil
	}
	shipNow := i.AvailableStock
	if shipNow < 0 {
		shipNow = 0
	}
	return &SplitNotice{
		ItemID:      i.ID,
		ProductName: i.Name,
		ShipNow:     shipNow,
		Backordered: i.Quantity - shipNow,
	}
}
