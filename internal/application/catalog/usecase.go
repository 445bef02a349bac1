package catalog

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Lubriportal-api/internal/domain/inventory"
	"github.com/jhoicas/Lubriportal-api/internal/domain/repository"
	"github.com/jhoicas/Lubriportal-api/pkg/logger"
)

// CategoryAll valor comodín del filtro de categoría: devuelve el catálogo completo.
const CategoryAll = "All"

// UseCase espejo de producto/inventario: búsqueda y filtros sobre el dataset
// local, más la orquestación del sync remoto con fallback al último dataset
// conocido. El sync nunca propaga errores al caller HTTP.
type UseCase struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	remote        RemoteCatalog
	log           *logger.Logger
}

// NewUseCase construye el caso de uso de catálogo. remote puede ser nil si no
// hay Service Layer configurado: Sync reporta fallback inmediato.
func NewUseCase(productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository, remote RemoteCatalog, log *logger.Logger) *UseCase {
	return &UseCase{productRepo: productRepo, inventoryRepo: inventoryRepo, remote: remote, log: log}
}

// GetProduct obtiene un producto por id.
func (uc *UseCase) GetProduct(id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Search busca por substring insensible a mayúsculas y acentos sobre
// nombre, código de ítem y categoría. Query vacío devuelve el catálogo completo.
func (uc *UseCase) Search(query string) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	needle := fold(query)
	if needle == "" {
		return &dto.ProductListResponse{Items: products, Total: len(products)}, nil
	}
	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold(p.Name), needle) ||
			strings.Contains(fold(p.ItemCode), needle) ||
			strings.Contains(fold(p.Category), needle) {
			matched = append(matched, p)
		}
	}
	return &dto.ProductListResponse{Items: matched, Total: len(matched)}, nil
}

// FilterByCategory filtra por categoría exacta; "All" cortocircuita al listado completo.
func (uc *UseCase) FilterByCategory(category string) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	if category == "" || category == CategoryAll {
		return &dto.ProductListResponse{Items: products, Total: len(products)}, nil
	}
	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return &dto.ProductListResponse{Items: matched, Total: len(matched)}, nil
}

// Inventory devuelve los niveles con su estado derivado
// (available = onHand − committed; umbrales 0 y 10).
func (uc *UseCase) Inventory() (*dto.InventoryListResponse, error) {
	levels, err := uc.inventoryRepo.List()
	if err != nil {
		return nil, err
	}
	resp := &dto.InventoryListResponse{Items: make([]dto.InventoryView, 0, len(levels))}
	for _, l := range levels {
		resp.Items = append(resp.Items, dto.InventoryView{
			InventoryLevel: *l,
			Available:      l.Available(),
			Status:         domaininv.StatusOf(*l),
		})
	}
	resp.Total = len(resp.Items)
	return resp, nil
}

// Sync intenta reemplazar el espejo con el dataset remoto. Ante cualquier
// fallo (sin sesión, red, non-2xx, decode) conserva el último dataset
// conocido, loguea un warning y reporta fallback: nunca lanza al caller.
func (uc *UseCase) Sync(ctx context.Context) *dto.SyncResponse {
	if uc.remote == nil {
		return &dto.SyncResponse{Fallback: true, Detail: "service layer no configurado"}
	}

	products, err := uc.remote.FetchProducts(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("sync de catálogo falló, se conserva el dataset local")
		return &dto.SyncResponse{Fallback: true, Detail: err.Error()}
	}
	levels, err := uc.remote.FetchInventory(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("sync de inventario falló, se conserva el dataset local")
		return &dto.SyncResponse{Fallback: true, Detail: err.Error()}
	}

	if err := uc.productRepo.ReplaceAll(products); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo reemplazar el espejo de productos")
		return &dto.SyncResponse{Fallback: true, Detail: err.Error()}
	}
	if err := uc.inventoryRepo.ReplaceAll(levels); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo reemplazar el espejo de inventario")
		return &dto.SyncResponse{Fallback: true, Detail: err.Error()}
	}

	uc.log.Info().Int("products", len(products)).Int("levels", len(levels)).Msg("espejo sincronizado desde SAP")
	return &dto.SyncResponse{Products: len(products), Inventory: len(levels)}
}

// TestConnection prueba la sesión contra el Service Layer (panel de integración).
func (uc *UseCase) TestConnection(ctx context.Context) error {
	if uc.remote == nil {
		return domain.ErrConflict
	}
	return uc.remote.TestConnection(ctx)
}

// fold normaliza a minúsculas y elimina marcas diacríticas (NFD + remoción de
// Mn + NFC), de modo que "sintetico" encuentre "Sintético".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}
