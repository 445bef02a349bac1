package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcart "github.com/jhoicas/Lubriportal-api/internal/application/cart"
	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// CartHandler expone el carrito del propietario (usuario o sesión invitada).
type CartHandler struct {
	uc *appcart.UseCase
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(uc *appcart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Carrito con subtotal y avisos de envío parcial
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(OwnerID(c), Role(c) == entity.RoleGuest)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrito (misma línea incrementa cantidad)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "product_id, quantity, option"
// @Success      201   {object}  entity.CartItem
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	item, err := h.uc.Add(OwnerID(c), in, Role(c) == entity.RoleCustomer)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem godoc
// @Summary      Cambiar cantidad de una línea (0 elimina; bajo el mínimo se rechaza)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "id de la línea"
// @Param        body  body  dto.UpdateCartItemRequest true  "quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      422   {object}  dto.NoticeResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity no puede ser negativo"})
	}
	err := h.uc.UpdateQuantity(OwnerID(c), c.Params("id"), in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrBelowMinOrder) {
			// Aviso no bloqueante: el estado del carrito queda intacto.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NoticeResponse{Notice: "la cantidad no alcanza el pedido mínimo"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.Get(c)
}

// DeleteItem godoc
// @Summary      Eliminar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        id  path  string  true  "id de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.Remove(OwnerID(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Checkout: subtotal + 8% impuesto + recargo opcional; vacía el carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "emergency_delivery"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      422   {object}  dto.NoticeResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Checkout(OwnerID(c), Role(c) == entity.RoleGuest, in)
	if err != nil {
		if errors.Is(err, domain.ErrUnquotedCheckout) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NoticeResponse{Notice: "cotización requerida: hay artículos sin cotizar"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
