// Package memory implementa los puertos de repositorio sobre mapas protegidos
// con mutex. Es la única capa de datos del portal: no hay persistencia real y
// el tiempo de vida del proceso es el tiempo de vida de los stores.
package memory

import (
	"sync"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// UserRepository usuarios en memoria, indexados por id y por username.
type UserRepository struct {
	mu         sync.RWMutex
	byID       map[string]*entity.User
	byUsername map[string]*entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[string]*entity.User),
		byUsername: make(map[string]*entity.User),
	}
}

// Create agrega un usuario.
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.byID[u.ID] = &u
	r.byUsername[u.Username] = &u
	return nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byID[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

// GetByUsername devuelve el usuario o nil si no existe.
func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byUsername[username]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

// List devuelve todos los usuarios.
func (r *UserRepository) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}
