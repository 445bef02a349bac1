package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	appquote "github.com/jhoicas/Lubriportal-api/internal/application/quote"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/domain/repository"
)

// OrderHandler expone los pedidos consolidados y su confirmación en PDF.
type OrderHandler struct {
	orders repository.OrderRepository
	pdfUC  *appquote.PDFUseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(orders repository.OrderRepository, pdfUC *appquote.PDFUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, pdfUC: pdfUC}
}

// List godoc
// @Summary      Pedidos del solicitante (personal interno ve todos con ?all=true)
// @Tags         orders
// @Produce      json
// @Param        all  query  bool  false  "listar todos (requiere rol interno)"
// @Success      200  {array}  entity.ConsolidatedOrder
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	actor := Actor(c)
	var (
		orders []*entity.ConsolidatedOrder
		err    error
	)
	if c.QueryBool("all") && actor.HasPermission(entity.PermViewInventory) {
		orders, err = h.orders.List()
	} else {
		orders, err = h.orders.ListByCustomer(OwnerID(c))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(orders)
}

// GetByID godoc
// @Summary      Detalle de un pedido consolidado
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "id del pedido"
// @Success      200  {object}  entity.ConsolidatedOrder
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.orders.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	actor := Actor(c)
	if order.CustomerID != OwnerID(c) && !actor.HasPermission(entity.PermViewInventory) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el pedido pertenece a otro cliente"})
	}
	return c.JSON(order)
}

// Document godoc
// @Summary      Descargar la confirmación del pedido en PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        id  path  string  true  "id del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/document [get]
func (h *OrderHandler) Document(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadOrderPDF(c.Context(), Role(c), OwnerID(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el pedido pertenece a otro cliente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
