package repository

import "github.com/jhoicas/Lubriportal-api/internal/domain/entity"

// CartRepository define el puerto del store de carritos, uno por propietario
// (usuario autenticado o clave de sesión invitada).
type CartRepository interface {
	Items(ownerID string) ([]*entity.CartItem, error)
	GetItem(ownerID, itemID string) (*entity.CartItem, error)
	UpsertItem(ownerID string, item *entity.CartItem) error
	RemoveItem(ownerID, itemID string) error
	Clear(ownerID string) error
}
