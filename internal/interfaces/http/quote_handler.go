package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	appquote "github.com/jhoicas/Lubriportal-api/internal/application/quote"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// QuoteHandler maneja el ciclo de vida de cotizaciones.
type QuoteHandler struct {
	uc *appquote.UseCase
}

// NewQuoteHandler construye el handler de cotizaciones.
func NewQuoteHandler(uc *appquote.UseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create godoc
// @Summary      Solicitar cotización (queda pending, sin monto)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "product_id, quantity, requirements"
// @Success      201   {object}  entity.QuoteRequest
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quote, err := h.uc.Request(OwnerID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity > 0 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// List godoc
// @Summary      Cotizaciones propias (empleados ven todas con ?all=true)
// @Tags         quotes
// @Produce      json
// @Param        all  query  bool  false  "listar todas (requiere permiso de empleado)"
// @Success      200  {object}  dto.QuoteListResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	actor := Actor(c)
	all := c.QueryBool("all") && actor.HasPermission(entity.PermPriceQuotes)
	out, err := h.uc.List(OwnerID(c), all)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Price godoc
// @Summary      Cotizar (empleado): pending/processing -> quoted, fija monto y vigencia
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id de la cotización"
// @Param        body  body  dto.PriceQuoteRequest  true  "amount, valid_until"
// @Success      200   {object}  entity.QuoteRequest
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/price [post]
func (h *QuoteHandler) Price(c *fiber.Ctx) error {
	var in dto.PriceQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quote, err := h.uc.Price(Actor(c), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere permiso de cotización"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la cotización no está pendiente"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser mayor que cero"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(quote)
}

// Decline godoc
// @Summary      Rechazar una cotización pendiente o emitida
// @Tags         quotes
// @Produce      json
// @Param        id  path  string  true  "id de la cotización"
// @Success      200  {object}  entity.QuoteRequest
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/decline [post]
func (h *QuoteHandler) Decline(c *fiber.Ctx) error {
	quote, err := h.uc.Decline(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la cotización ya fue consumida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(quote)
}

// Toggle godoc
// @Summary      Alternar selección (solo estados seleccionables; el resto es no-op)
// @Tags         quotes
// @Produce      json
// @Param        id  path  string  true  "id de la cotización"
// @Success      200  {object}  dto.ToggleResponse
// @Failure      422  {object}  dto.NoticeResponse
// @Router       /api/quotes/{id}/toggle [post]
func (h *QuoteHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.Toggle(Role(c), OwnerID(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGuestQuoteLimit):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NoticeResponse{Notice: "el portal invitado permite máximo 5 productos únicos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la cotización pertenece a otro cliente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Consolidate godoc
// @Summary      Consolidar las cotizaciones seleccionadas en un pedido
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsolidateRequest  true  "related_order_id opcional"
// @Success      201   {object}  dto.ConsolidateResponse
// @Failure      422   {object}  dto.NoticeResponse
// @Router       /api/quotes/consolidate [post]
func (h *QuoteHandler) Consolidate(c *fiber.Ctx) error {
	var in dto.ConsolidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Consolidate(Role(c), OwnerID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoQuotesSelected):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NoticeResponse{Notice: "no hay cotizaciones seleccionadas"})
		case errors.Is(err, domain.ErrGuestQuoteLimit):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NoticeResponse{Notice: "el portal invitado permite máximo 5 productos únicos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
