// Package snapshot persiste la sesión del portal en un archivo JSON local,
// el análogo del localStorage del front-end. El esquema lleva versión para
// poder migrar; una versión desconocida o un archivo corrupto se reportan
// como error y el caller abre a rol invitado.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// schemaVersion versión actual del snapshot. Subir al cambiar el esquema y
// atender el caso en migrate.
const schemaVersion = 1

// envelope esquema versionado del archivo.
type envelope struct {
	Version int          `json:"version"`
	SavedAt time.Time    `json:"saved_at"`
	User    *entity.User `json:"user"`
}

// Store snapshot de sesión en disco, un archivo por instancia del portal.
type Store struct {
	path string
}

// NewStore construye el store sobre la ruta configurada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// SaveUser persiste el usuario actual (escritura atómica vía rename).
func (s *Store) SaveUser(u *entity.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("snapshot: crear directorio: %w", err)
	}
	data, err := json.MarshalIndent(envelope{Version: schemaVersion, SavedAt: time.Now(), User: u}, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: serializar: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("snapshot: escribir: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("snapshot: renombrar: %w", err)
	}
	return nil
}

// LoadUser carga la sesión persistida. Devuelve (nil, nil) si no hay snapshot;
// error si el archivo es ilegible, corrupto o de versión desconocida.
func (s *Store) LoadUser() (*entity.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot: leer: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("snapshot: parsear: %w", err)
	}
	if err := migrate(&env); err != nil {
		return nil, err
	}
	return env.User, nil
}

// Clear elimina el snapshot. No es error que no exista.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("snapshot: eliminar: %w", err)
	}
	return nil
}

// migrate lleva un envelope de versión anterior al esquema actual. Hoy solo
// existe la versión 1; cualquier otra se rechaza.
func migrate(env *envelope) error {
	switch env.Version {
	case schemaVersion:
		return nil
	default:
		return fmt.Errorf("snapshot: versión de esquema desconocida %d", env.Version)
	}
}
