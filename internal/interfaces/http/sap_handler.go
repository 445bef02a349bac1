package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/Lubriportal-api/internal/application/catalog"
	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/infrastructure/sap"
)

// RemoteOrders puerto de consulta de pedidos remotos del panel de integración.
type RemoteOrders interface {
	FetchOrders(ctx context.Context) ([]sap.Order, error)
}

// SAPHandler expone la integración con el Service Layer para el personal interno.
type SAPHandler struct {
	catalogUC *appcatalog.UseCase
	syncer    *sap.Syncer
	orders    RemoteOrders // nil si no hay integración configurada
}

// NewSAPHandler construye el handler de integración SAP.
func NewSAPHandler(catalogUC *appcatalog.UseCase, syncer *sap.Syncer, orders RemoteOrders) *SAPHandler {
	return &SAPHandler{catalogUC: catalogUC, syncer: syncer, orders: orders}
}

// Status godoc
// @Summary      Estado de la conexión con el Service Layer
// @Tags         sap
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/sap/status [get]
func (h *SAPHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"connected": h.syncer.Connected()})
}

// TestConnection godoc
// @Summary      Probar la conexión (fuerza un nuevo login contra el Service Layer)
// @Tags         sap
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sap/test [post]
func (h *SAPHandler) TestConnection(c *fiber.Ctx) error {
	if err := h.catalogUC.TestConnection(c.Context()); err != nil {
		h.syncer.SetConnected(false)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SAP_UNAVAILABLE", Message: err.Error()})
	}
	h.syncer.SetConnected(true)
	return c.JSON(fiber.Map{"connected": true})
}

// Sync godoc
// @Summary      Sincronizar catálogo e inventario desde el Service Layer
// @Description  Si la conexión falla, el espejo local se conserva y la
// @Description  respuesta indica fallback=true; nunca retorna error.
// @Tags         sap
// @Produce      json
// @Success      200  {object}  dto.SyncResponse
// @Router       /api/sap/sync [post]
func (h *SAPHandler) Sync(c *fiber.Ctx) error {
	out := h.catalogUC.Sync(c.Context())
	h.syncer.SetConnected(!out.Fallback)
	return c.JSON(out)
}

// Orders godoc
// @Summary      Pedidos remotos del Service Layer
// @Tags         sap
// @Produce      json
// @Success      200  {array}   sap.Order
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sap/orders [get]
func (h *SAPHandler) Orders(c *fiber.Ctx) error {
	if h.orders == nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SAP_UNAVAILABLE", Message: "integración SAP no configurada"})
	}
	orders, err := h.orders.FetchOrders(c.Context())
	if err != nil {
		h.syncer.SetConnected(false)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SAP_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(orders)
}
