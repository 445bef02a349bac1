package dto

import "github.com/jhoicas/Lubriportal-api/internal/domain/navigation"

// NavigationResponse menú, breadcrumbs y decisión de redirección para
// (rol del solicitante, path consultado).
type NavigationResponse struct {
	Role        string            `json:"role"`
	Menu        []navigation.Item `json:"menu"`
	Breadcrumbs []navigation.Crumb `json:"breadcrumbs"`
	RedirectTo  string            `json:"redirect_to,omitempty"`
	Redirect    bool              `json:"redirect"`
}
