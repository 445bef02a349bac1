package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Lubriportal-api/internal/application/auth"
	appcart "github.com/jhoicas/Lubriportal-api/internal/application/cart"
	appcatalog "github.com/jhoicas/Lubriportal-api/internal/application/catalog"
	appquote "github.com/jhoicas/Lubriportal-api/internal/application/quote"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/domain/navigation"
	"github.com/jhoicas/Lubriportal-api/internal/domain/repository"
	"github.com/jhoicas/Lubriportal-api/internal/infrastructure/sap"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	CatalogUC *appcatalog.UseCase
	CartUC    *appcart.UseCase
	QuoteUC   *appquote.UseCase
	PDFUC     *appquote.PDFUseCase
	OrderRepo repository.OrderRepository
	Resolver  *navigation.Resolver
	Syncer    *sap.Syncer
	SAPOrders RemoteOrders
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", AuthMiddleware(deps.JWTSecret), authHandler.Session)

	// Rutas de portal: abiertas a invitados, con identidad opcional por token
	// o cookie de sesión invitada.
	portal := api.Group("/", OptionalAuthMiddleware(deps.JWTSecret))

	// Navegación (rol actual)
	navHandler := NewNavigationHandler(deps.Resolver)
	portal.Get("/navigation", navHandler.Resolve)

	// Catálogo espejo
	products := portal.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)

	// Carrito (por propietario: usuario o sesión invitada)
	cartGroup := portal.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:id", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:id", cartHandler.DeleteItem)
	cartGroup.Post("/checkout", cartHandler.Checkout)

	// Cotizaciones
	quotes := portal.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Post("/consolidate", quoteHandler.Consolidate)
	quotes.Post("/:id/toggle", quoteHandler.Toggle)
	quotes.Post("/:id/decline", quoteHandler.Decline)
	quotes.Post("/:id/price", RequirePermission(entity.PermPriceQuotes), quoteHandler.Price)

	// Pedidos consolidados
	orders := portal.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderRepo, deps.PDFUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/document", orderHandler.Document)

	// Inventario e integración SAP (personal interno, requieren Bearer Token)
	internal := api.Group("/", AuthMiddleware(deps.JWTSecret))
	internal.Get("/inventory", RequirePermission(entity.PermViewInventory), productHandler.Inventory)

	sapGroup := internal.Group("/sap", RequirePermission(entity.PermSAPSync))
	sapHandler := NewSAPHandler(deps.CatalogUC, deps.Syncer, deps.SAPOrders)
	sapGroup.Get("/status", sapHandler.Status)
	sapGroup.Get("/orders", sapHandler.Orders)
	sapGroup.Post("/test", sapHandler.TestConnection)
	sapGroup.Post("/sync", sapHandler.Sync)
}
