package entity

import "time"

// Roles válidos para User. Un usuario nil se trata como RoleGuest.
const (
	RoleGuest    = "guest"
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Permisos del portal. Se asignan por rol al iniciar sesión.
const (
	PermBrowseCatalog = "catalog:browse"
	PermRequestQuote  = "quote:request"
	PermManageCart    = "cart:manage"
	PermCheckout      = "cart:checkout"
	PermViewOrders    = "orders:view"
	PermPriceQuotes   = "quote:price"
	PermViewInventory = "inventory:view"
	PermSAPSync       = "sap:sync"
)

// Preferences preferencias del usuario (portal por defecto, notificaciones, auto-sync).
type Preferences struct {
	Portal        string `json:"portal"`
	Notifications bool   `json:"notifications"`
	AutoSync      bool   `json:"auto_sync"`
}

// User representa un usuario del portal (cliente, empleado o admin).
// El rol determina el menú de navegación y las reglas de redirección.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"` // bcrypt; vacío para usuarios ad-hoc del mock
	Role         string      `json:"role"`
	CustomerCode string      `json:"customer_code,omitempty"`
	Permissions  []string    `json:"permissions"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"created_at"`
}

// HasPermission verifica pertenencia al conjunto de permisos. Admin implica todos.
func (u *User) HasPermission(perm string) bool {
	if u == nil {
		return false
	}
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// RoleOf devuelve el rol efectivo: un usuario nil es invitado.
func RoleOf(u *User) string {
	if u == nil {
		return RoleGuest
	}
	return u.Role
}
