package sap

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// ── Contrato del Service Layer ────────────────────────────────────────────────

// loginRequest cuerpo de POST /Login.
type loginRequest struct {
	CompanyDB string `json:"CompanyDB"`
	UserName  string `json:"UserName"`
	Password  string `json:"Password"`
}

// loginResponse respuesta de POST /Login.
type loginResponse struct {
	SessionID string `json:"SessionId"`
}

// valueEnvelope envoltura estándar de colecciones del Service Layer.
type valueEnvelope[T any] struct {
	Value []T `json:"value"`
}

// Item ítem del maestro de artículos SAP (GET /Items).
type Item struct {
	ItemCode      string          `json:"ItemCode"`
	ItemName      string          `json:"ItemName"`
	ItemsGroup    string          `json:"ItemsGroupName"`
	ForeignName   string          `json:"ForeignName"`
	SalesUnit     string          `json:"SalesUnit"`
	MinOrderQty   int             `json:"MinOrderQty"`
	Price         decimal.Decimal `json:"Price"`
	UserViscosity string          `json:"U_Viscosity"`
	UserApp       string          `json:"U_Application"`
	UserHazardous string          `json:"U_Hazardous"` // "Y" | "N"
	Frozen        string          `json:"Frozen"`      // "tYES" bloquea venta
}

// StockTransfer nivel de stock por bodega (GET /StockTransfers).
type StockTransfer struct {
	ItemCode      string    `json:"ItemCode"`
	WarehouseCode string    `json:"WarehouseCode"`
	OnHand        int       `json:"OnHand"`
	Committed     int       `json:"Committed"`
	Ordered       int       `json:"Ordered"`
	UpdateDate    time.Time `json:"UpdateDate"`
}

// Quotation borrador de cotización enviado a SAP (POST /Quotations).
type Quotation struct {
	CardCode      string          `json:"CardCode"`
	Comments      string          `json:"Comments,omitempty"`
	DocumentLines []QuotationLine `json:"DocumentLines"`
}

// QuotationLine línea de una Quotation.
type QuotationLine struct {
	ItemCode  string          `json:"ItemCode"`
	Quantity  int             `json:"Quantity"`
	UnitPrice decimal.Decimal `json:"UnitPrice"`
}

// Order pedido remoto (GET /Orders), lectura para el panel de integración.
type Order struct {
	DocEntry int             `json:"DocEntry"`
	CardCode string          `json:"CardCode"`
	DocTotal decimal.Decimal `json:"DocTotal"`
	DocDate  time.Time       `json:"DocDate"`
	Status   string          `json:"DocumentStatus"`
}

// ── Mapeo al esquema local ────────────────────────────────────────────────────

// mapItem traduce un ítem SAP al esquema local del espejo de productos.
func mapItem(it Item) *entity.Product {
	minOrder := it.MinOrderQty
	if minOrder <= 0 {
		minOrder = 1
	}
	return &entity.Product{
		ID:            "sap-" + strings.ToLower(it.ItemCode),
		ItemCode:      it.ItemCode,
		Name:          it.ItemName,
		Category:      it.ItemsGroup,
		Description:   it.ForeignName,
		Viscosity:     it.UserViscosity,
		Application:   it.UserApp,
		InStock:       it.Frozen != "tYES",
		StartingPrice: it.Price,
		Unit:          it.SalesUnit,
		MinOrder:      minOrder,
		IsHazardous:   strings.EqualFold(it.UserHazardous, "Y"),
		UpdatedAt:     time.Now(),
	}
}

// mapStockTransfer traduce un nivel de stock SAP al esquema local.
func mapStockTransfer(st StockTransfer) *entity.InventoryLevel {
	updated := st.UpdateDate
	if updated.IsZero() {
		updated = time.Now()
	}
	return &entity.InventoryLevel{
		ItemCode:      st.ItemCode,
		WarehouseCode: st.WarehouseCode,
		OnHand:        st.OnHand,
		Committed:     st.Committed,
		OnOrder:       st.Ordered,
		LastUpdated:   updated,
	}
}
