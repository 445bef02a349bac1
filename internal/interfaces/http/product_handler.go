package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lubriportal-api/internal/application/catalog"
	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// ProductHandler expone el catálogo y el inventario del espejo local.
type ProductHandler struct {
	uc *catalog.UseCase
}

// NewProductHandler construye el handler de catálogo.
func NewProductHandler(uc *catalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo, con filtro exacto por categoría ("All" devuelve todo)
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "categoría"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.FilterByCategory(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.scrub(c, out))
}

// Search godoc
// @Summary      Búsqueda por substring (insensible a mayúsculas y acentos)
// @Tags         products
// @Produce      json
// @Param        q  query  string  false  "texto a buscar"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.scrub(c, out))
}

// GetByID godoc
// @Summary      Detalle de producto
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "id del producto"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetProduct(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if Role(c) == entity.RoleGuest {
		product.CustomerPrice = nil
	}
	return c.JSON(product)
}

// Inventory godoc
// @Summary      Niveles de inventario con estado derivado (solo empleados)
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *ProductHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// scrub oculta el precio negociado de cliente a los invitados.
func (h *ProductHandler) scrub(c *fiber.Ctx, out *dto.ProductListResponse) *dto.ProductListResponse {
	if Role(c) != entity.RoleGuest {
		return out
	}
	for _, p := range out.Items {
		p.CustomerPrice = nil
	}
	return out
}
