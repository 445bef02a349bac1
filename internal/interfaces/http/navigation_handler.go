package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/domain/navigation"
)

// NavigationHandler resuelve menú, breadcrumbs y redirección para el rol actual.
type NavigationHandler struct {
	resolver *navigation.Resolver
}

// NewNavigationHandler construye el handler de navegación.
func NewNavigationHandler(resolver *navigation.Resolver) *NavigationHandler {
	return &NavigationHandler{resolver: resolver}
}

// Resolve godoc
// @Summary      Navegación resuelta para el rol del solicitante
// @Tags         navigation
// @Produce      json
// @Param        path  query  string  false  "path a evaluar (por defecto /)"
// @Success      200   {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) Resolve(c *fiber.Ctx) error {
	path := c.Query("path", "/")
	role := Role(c)
	target, redirect := h.resolver.Redirect(role, path)
	return c.JSON(dto.NavigationResponse{
		Role:        role,
		Menu:        h.resolver.MenuFor(role),
		Breadcrumbs: h.resolver.Breadcrumbs(role, path),
		RedirectTo:  target,
		Redirect:    redirect,
	})
}
