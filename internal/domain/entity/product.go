package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductOption presentación alternativa de un producto (tambor, caneca, granel).
type ProductOption struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// ProductDocument documento técnico asociado (ficha técnica, certificado).
type ProductDocument struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Product representa un lubricante del catálogo. El espejo local puede ser
// reemplazado completo por una sincronización SAP; si la sincronización falla
// se conserva el último dataset conocido.
type Product struct {
	ID            string            `json:"id"`
	ItemCode      string            `json:"item_code"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Viscosity     string            `json:"viscosity"`
	Application   string            `json:"application"`
	Image         string            `json:"image"`
	InStock       bool              `json:"in_stock"`
	IsBulk        bool              `json:"is_bulk"`
	StartingPrice decimal.Decimal   `json:"starting_price"`
	CustomerPrice *decimal.Decimal  `json:"customer_price,omitempty"` // precio negociado, solo clientes
	Unit          string            `json:"unit"`
	MinOrder      int               `json:"min_order"`
	Options       []ProductOption   `json:"options,omitempty"`
	Specs         map[string]string `json:"specs,omitempty"`
	IsHazardous   bool              `json:"is_hazardous"`
	SDSURL        string            `json:"sds_url,omitempty"`
	Documents     []ProductDocument `json:"documents,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
