package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrBelowMinOrder    = errors.New("cantidad por debajo del pedido mínimo")
	ErrNoQuotesSelected = errors.New("no hay cotizaciones seleccionadas")
	ErrGuestQuoteLimit  = errors.New("límite de productos del portal invitado excedido")
	ErrUnquotedCheckout = errors.New("el carrito contiene artículos sin cotizar")
)
