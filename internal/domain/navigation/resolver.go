// Package navigation resuelve menú, breadcrumbs y redirecciones según el rol.
// Es el único punto del sistema con reglas de navegación: la tabla rol→menú se
// define una vez y se consume en todas partes (sin switches por componente).
package navigation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// Item entrada del menú de navegación de un rol.
type Item struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon,omitempty"`
}

// Crumb segmento del breadcrumb.
type Crumb struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Resolver tabla de navegación por rol más la máquina de redirección.
type Resolver struct {
	menus map[string][]Item
}

// NewResolver construye la tabla rol→menú. Admin usa el menú de empleado más
// sus entradas propias.
func NewResolver() *Resolver {
	guest := []Item{
		{Label: "Inicio", Path: "/guest/dashboard", Icon: "home"},
		{Label: "Productos", Path: "/guest/products", Icon: "package"},
		{Label: "Cotizaciones", Path: "/guest/quotes", Icon: "file-text"},
		{Label: "Carrito", Path: "/guest/cart", Icon: "shopping-cart"},
	}
	customer := []Item{
		{Label: "Inicio", Path: "/", Icon: "home"},
		{Label: "Productos", Path: "/products", Icon: "package"},
		{Label: "Cotizaciones", Path: "/quotes", Icon: "file-text"},
		{Label: "Pedidos", Path: "/orders", Icon: "truck"},
		{Label: "Carrito", Path: "/cart", Icon: "shopping-cart"},
	}
	employee := []Item{
		{Label: "Panel", Path: "/employee/dashboard", Icon: "layout"},
		{Label: "Cotizaciones", Path: "/employee/quotes", Icon: "file-text"},
		{Label: "Inventario", Path: "/employee/inventory", Icon: "database"},
		{Label: "Pedidos", Path: "/employee/orders", Icon: "truck"},
		{Label: "Integración SAP", Path: "/employee/sap", Icon: "refresh-cw"},
	}
	admin := append(append([]Item{}, employee...),
		Item{Label: "Usuarios", Path: "/employee/users", Icon: "users"},
	)
	return &Resolver{menus: map[string][]Item{
		entity.RoleGuest:    guest,
		entity.RoleCustomer: customer,
		entity.RoleEmployee: employee,
		entity.RoleAdmin:    admin,
	}}
}

// MenuFor devuelve el menú ordenado del rol. Un rol desconocido se trata como invitado.
func (r *Resolver) MenuFor(role string) []Item {
	if menu, ok := r.menus[role]; ok {
		return menu
	}
	return r.menus[entity.RoleGuest]
}

// Redirect decide la redirección para (rol, path). Las tres reglas se evalúan
// en orden y son mutuamente excluyentes por construcción (el rol determina
// cuál puede dispararse):
//  1. empleado/admin fuera de /employee  -> /employee/dashboard
//  2. cliente dentro de /employee o /guest -> /
//  3. no autenticado fuera de /guest y distinto de /login -> /guest/dashboard
func (r *Resolver) Redirect(role, path string) (target string, redirect bool) {
	switch role {
	case entity.RoleEmployee, entity.RoleAdmin:
		if !strings.HasPrefix(path, "/employee") {
			return "/employee/dashboard", true
		}
	case entity.RoleCustomer:
		if strings.HasPrefix(path, "/employee") || strings.HasPrefix(path, "/guest") {
			return "/", true
		}
	default: // invitado / no autenticado
		if !strings.HasPrefix(path, "/guest") && path != "/login" {
			return "/guest/dashboard", true
		}
	}
	return "", false
}

// Breadcrumbs recorre los segmentos del path y mapea cada uno al label del
// ítem de navegación que coincida, o a un fallback humanizado. Los segmentos
// puramente numéricos se presentan como "ID: <n>".
func (r *Resolver) Breadcrumbs(role, path string) []Crumb {
	menu := r.MenuFor(role)
	segments := strings.Split(strings.Trim(path, "/"), "/")
	crumbs := make([]Crumb, 0, len(segments))
	acc := ""
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		acc += "/" + seg
		label := ""
		for _, it := range menu {
			if it.Path == acc {
				label = it.Label
				break
			}
		}
		if label == "" {
			label = humanize(seg)
		}
		crumbs = append(crumbs, Crumb{Label: label, Path: acc})
	}
	return crumbs
}

// humanize capitaliza y reemplaza guiones; un segmento numérico se vuelve "ID: <n>".
func humanize(segment string) string {
	if isNumeric(segment) {
		return "ID: " + segment
	}
	words := strings.Split(strings.ReplaceAll(segment, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
