package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/infrastructure/snapshot"
)

func newStore(t *testing.T) (*snapshot.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return snapshot.NewStore(path), path
}

func TestSaveUser_YLoadUser(t *testing.T) {
	store, _ := newStore(t)

	user := &entity.User{
		ID:           "user-acme",
		Username:     "acme.customer",
		Role:         entity.RoleCustomer,
		CustomerCode: "C-10021",
		Permissions:  []string{entity.PermBrowseCatalog},
	}
	require.NoError(t, store.SaveUser(user))

	loaded, err := store.LoadUser()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, user.Username, loaded.Username)
	assert.Equal(t, user.Role, loaded.Role)
	assert.Equal(t, user.CustomerCode, loaded.CustomerCode)
}

// TestLoadUser_SinArchivoEsNilNil: la ausencia de snapshot no es un error, solo
// significa que nunca hubo sesión.
func TestLoadUser_SinArchivoEsNilNil(t *testing.T) {
	store, _ := newStore(t)

	user, err := store.LoadUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

// TestLoadUser_ArchivoCorrupto: JSON ilegible es un error (el caller degrada a
// invitado, pero este nivel lo reporta).
func TestLoadUser_ArchivoCorrupto(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	_, err := store.LoadUser()
	assert.Error(t, err)
}

// TestLoadUser_VersionDesconocida: un esquema futuro se rechaza en lugar de
// interpretarse a medias.
func TestLoadUser_VersionDesconocida(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "user": {"id": "x"}}`), 0o600))

	_, err := store.LoadUser()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "versión de esquema desconocida")
}

func TestClear_EliminaYEsIdempotente(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, store.SaveUser(&entity.User{ID: "x", Username: "x"}))

	require.NoError(t, store.Clear())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Borrar dos veces no es error.
	assert.NoError(t, store.Clear())
}

// TestSaveUser_SobrescribeSesionAnterior: un nuevo login reemplaza el snapshot
// completo.
func TestSaveUser_SobrescribeSesionAnterior(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.SaveUser(&entity.User{ID: "a", Username: "primero.customer"}))
	require.NoError(t, store.SaveUser(&entity.User{ID: "b", Username: "segundo.employee", Role: entity.RoleEmployee}))

	loaded, err := store.LoadUser()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "segundo.employee", loaded.Username)
}
