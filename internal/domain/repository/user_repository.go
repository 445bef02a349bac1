package repository

import "github.com/jhoicas/Lubriportal-api/internal/domain/entity"

// UserRepository define el puerto de acceso a usuarios (DIP).
// La implementación del portal es en memoria: no hay capa de persistencia.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
}
