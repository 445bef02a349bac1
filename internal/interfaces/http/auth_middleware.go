package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/pkg/jwt"
)

// Locals keys del contexto Fiber.
const (
	LocalClaims   = "claims"
	LocalOwnerID  = "owner_id"
	LocalGuestKey = "guest_key"

	// guestCookie identifica la sesión invitada (carrito y cotizaciones de
	// invitados sobreviven entre requests sin autenticación).
	guestCookie = "portal_session"
)

// AuthMiddleware exige un Bearer Token válido y deja los claims en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errResp := parseBearer(c, jwtSecret)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(*errResp)
		}
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		c.Locals(LocalClaims, claims)
		c.Locals(LocalOwnerID, claims.UserID)
		return c.Next()
	}
}

// OptionalAuthMiddleware acepta requests con o sin token. Sin token (o con
// token inválido) el solicitante es un invitado identificado por cookie de
// sesión; nunca responde 401.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, _ := parseBearer(c, jwtSecret)
		if claims != nil {
			c.Locals(LocalClaims, claims)
			c.Locals(LocalOwnerID, claims.UserID)
			return c.Next()
		}
		key := c.Cookies(guestCookie)
		if key == "" {
			key = "guest-" + uuid.New().String()
			c.Cookie(&fiber.Cookie{Name: guestCookie, Value: key, HTTPOnly: true, SameSite: "Lax"})
		}
		c.Locals(LocalGuestKey, key)
		c.Locals(LocalOwnerID, key)
		return c.Next()
	}
}

// RequirePermission exige un permiso del token (admin implica todos).
func RequirePermission(perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := Actor(c)
		if actor == nil || !actor.HasPermission(perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente"})
		}
		return c.Next()
	}
}

// Actor reconstruye el usuario desde los claims, o nil para invitados.
func Actor(c *fiber.Ctx) *entity.User {
	claims, ok := c.Locals(LocalClaims).(*jwt.Claims)
	if !ok || claims == nil {
		return nil
	}
	return &entity.User{
		ID:           claims.UserID,
		Username:     claims.Username,
		Role:         claims.Role,
		CustomerCode: claims.CustomerCode,
		Permissions:  claims.Permissions,
	}
}

// Role rol efectivo del solicitante (invitado si no hay token).
func Role(c *fiber.Ctx) string {
	return entity.RoleOf(Actor(c))
}

// OwnerID identidad del propietario de carrito/cotizaciones: el id del usuario
// autenticado o la clave de la sesión invitada.
func OwnerID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalOwnerID).(string); ok {
		return v
	}
	return ""
}

// parseBearer devuelve (claims, nil) con token válido, (nil, nil) sin header y
// (nil, error) con header presente pero inválido.
func parseBearer(c *fiber.Ctx, jwtSecret string) (*jwt.Claims, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"}
	}
	return claims, nil
}
