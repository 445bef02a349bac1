package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lubriportal-api/internal/application/catalog"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/infrastructure/memory"
	"github.com/jhoicas/Lubriportal-api/pkg/logger"
)

// fakeRemote implementación de prueba del puerto RemoteCatalog.
type fakeRemote struct {
	products []*entity.Product
	levels   []*entity.InventoryLevel
	err      error
}

func (f *fakeRemote) FetchProducts(ctx context.Context) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, catalog.NewSyncError("productos", f.err)
	}
	return f.products, nil
}

func (f *fakeRemote) FetchInventory(ctx context.Context) ([]*entity.InventoryLevel, error) {
	if f.err != nil {
		return nil, catalog.NewSyncError("inventario", f.err)
	}
	return f.levels, nil
}

func (f *fakeRemote) TestConnection(ctx context.Context) error { return f.err }

func newCatalogUseCase(t *testing.T, remote catalog.RemoteCatalog) *catalog.UseCase {
	t.Helper()
	_, products, inventory, _, _, _, err := memory.NewSeededStores()
	require.NoError(t, err)
	return catalog.NewUseCase(products, inventory, remote, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// TestSearch_InsensibleAAcentos: "sintetico" sin tilde debe encontrar el
// "Aceite Sintético para Engranajes 220".
func TestSearch_InsensibleAAcentos(t *testing.T) {
	uc := newCatalogUseCase(t, nil)

	out, err := uc.Search("sintetico")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "prod-gear-220", out.Items[0].ID)
}

func TestSearch_InsensibleAMayusculas(t *testing.T) {
	uc := newCatalogUseCase(t, nil)

	out, err := uc.Search("HIDRÁULICO")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "prod-hyd-46", out.Items[0].ID)
}

// TestSearch_PorCodigoDeItem: la búsqueda también cubre el código SAP.
func TestSearch_PorCodigoDeItem(t *testing.T) {
	uc := newCatalogUseCase(t, nil)

	out, err := uc.Search("LUB-GRS")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "prod-grease-ep2", out.Items[0].ID)
}

func TestSearch_VacioDevuelveTodo(t *testing.T) {
	uc := newCatalogUseCase(t, nil)

	out, err := uc.Search("  ")
	require.NoError(t, err)
	assert.Equal(t, 5, out.Total)
}

func TestSearch_SinCoincidencias(t *testing.T) {
	uc := newCatalogUseCase(t, nil)

	out, err := uc.Search("turbina de vapor")
	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.Empty(t, out.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro por categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterByCategory_Exacta(t *testing.T) {
	uc := newCatalogUseCase(t, nil)

	out, err := uc.FilterByCategory("Grasas")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "prod-grease-ep2", out.Items[0].ID)
}

// TestFilterByCategory_AllEsComodin: "All" no es una categoría, es el catálogo completo.
func TestFilterByCategory_AllEsComodin(t *testing.T) {
	uc := newCatalogUseCase(t, nil)

	out, err := uc.FilterByCategory(catalog.CategoryAll)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Total)
}

func TestGetProduct_Inexistente(t *testing.T) {
	uc := newCatalogUseCase(t, nil)
	_, err := uc.GetProduct("prod-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario con estado derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_EstadosDerivados(t *testing.T) {
	uc := newCatalogUseCase(t, nil)

	out, err := uc.Inventory()
	require.NoError(t, err)
	require.Equal(t, 5, out.Total)

	byCode := make(map[string]string, out.Total)
	for _, v := range out.Items {
		byCode[v.ItemCode] = v.Status
	}
	assert.Equal(t, entity.InventoryStatusInStock, byCode["LUB-HYD-046"], "180-35=145 disponible")
	assert.Equal(t, entity.InventoryStatusLowStock, byCode["LUB-GEAR-220"], "24-15=9 disponible")
	assert.Equal(t, entity.InventoryStatusOutOfStock, byCode["LUB-COOL-HD"], "40-40=0 disponible")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sync con fallback
// ──────────────────────────────────────────────────────────────────────────────

// TestSync_SinRemotoEsFallbackInmediato: sin Service Layer configurado el sync
// nunca se intenta y el espejo local queda intacto.
func TestSync_SinRemotoEsFallbackInmediato(t *testing.T) {
	uc := newCatalogUseCase(t, nil)

	out := uc.Sync(context.Background())
	assert.True(t, out.Fallback)

	list, err := uc.Search("")
	require.NoError(t, err)
	assert.Equal(t, 5, list.Total, "el dataset local se conserva")
}

// TestSync_FalloRemotoConservaElEspejo: un error del Service Layer se degrada
// a fallback con el detalle del error tipado; nunca se propaga.
func TestSync_FalloRemotoConservaElEspejo(t *testing.T) {
	remote := &fakeRemote{err: errors.New("timeout de red")}
	uc := newCatalogUseCase(t, remote)

	out := uc.Sync(context.Background())
	assert.True(t, out.Fallback)
	assert.Contains(t, out.Detail, "timeout de red")

	list, err := uc.Search("")
	require.NoError(t, err)
	assert.Equal(t, 5, list.Total)
}

// TestSync_ExitosoReemplazaElEspejo: un sync exitoso sustituye el dataset
// completo por el remoto.
func TestSync_ExitosoReemplazaElEspejo(t *testing.T) {
	remote := &fakeRemote{
		products: []*entity.Product{
			{ID: "sap-lub-trf-32", ItemCode: "LUB-TRF-032", Name: "Aceite para Turbinas 32", Category: "Turbinas"},
		},
		levels: []*entity.InventoryLevel{
			{ItemCode: "LUB-TRF-032", WarehouseCode: "01", OnHand: 50},
		},
	}
	uc := newCatalogUseCase(t, remote)

	out := uc.Sync(context.Background())
	assert.False(t, out.Fallback)
	assert.Equal(t, 1, out.Products)
	assert.Equal(t, 1, out.Inventory)

	list, err := uc.Search("")
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "sap-lub-trf-32", list.Items[0].ID)
}

// TestSyncError_ConservaLaCausa: el error tipado expone su etapa y desenvuelve
// la causa original.
func TestSyncError_ConservaLaCausa(t *testing.T) {
	causa := errors.New("conexión rechazada")
	err := catalog.NewSyncError("login", causa)

	assert.ErrorIs(t, err, causa)
	assert.Contains(t, err.Error(), "login")
}
