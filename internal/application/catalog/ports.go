package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
)

// RemoteCatalog define el puerto de salida hacia el Service Layer SAP.
// La implementación concreta vive en infrastructure/sap; para tests se
// inyecta un mock. El caller decide la política de fallback: el cliente
// reporta el error tipado y nunca degrada en silencio.
type RemoteCatalog interface {
	// FetchProducts trae el catálogo remoto ya mapeado al esquema local.
	FetchProducts(ctx context.Context) ([]*entity.Product, error)
	// FetchInventory trae los niveles de stock de la bodega configurada.
	FetchInventory(ctx context.Context) ([]*entity.InventoryLevel, error)
	// TestConnection verifica credenciales y sesión contra el Service Layer.
	TestConnection(ctx context.Context) error
}

// SyncError identifica la etapa en que falló una sincronización
// (login, items, inventario, decode). El use case lo degrada a fallback.
type SyncError struct {
	Stage string
	Err   error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Stage, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// NewSyncError construye el error tipado de sincronización.
func NewSyncError(stage string, err error) *SyncError {
	return &SyncError{Stage: stage, Err: err}
}
