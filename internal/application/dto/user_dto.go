package dto

import (
	"time"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// LoginRequest entrada para iniciar sesión. El rol se deriva del username
// (contrato del mock): contiene "employee" -> empleado, "admin" -> admin,
// cualquier otro -> cliente.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID           string             `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	Role         string             `json:"role"`
	CustomerCode string             `json:"customer_code,omitempty"`
	Permissions  []string           `json:"permissions"`
	Preferences  entity.Preferences `json:"preferences"`
	CreatedAt    time.Time          `json:"created_at"`
}

// LoginResponse salida con token de sesión y usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse mapea la entidad a la respuesta pública.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		CustomerCode: u.CustomerCode,
		Permissions:  u.Permissions,
		Preferences:  u.Preferences,
		CreatedAt:    u.CreatedAt,
	}
}
