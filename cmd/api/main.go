package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Lubriportal-api/internal/application/auth"
	appcart "github.com/jhoicas/Lubriportal-api/internal/application/cart"
	appcatalog "github.com/jhoicas/Lubriportal-api/internal/application/catalog"
	appquote "github.com/jhoicas/Lubriportal-api/internal/application/quote"
	"github.com/jhoicas/Lubriportal-api/internal/domain/navigation"
	"github.com/jhoicas/Lubriportal-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Lubriportal-api/internal/infrastructure/pdf"
	infrasap "github.com/jhoicas/Lubriportal-api/internal/infrastructure/sap"
	"github.com/jhoicas/Lubriportal-api/internal/infrastructure/snapshot"
	httpRouter "github.com/jhoicas/Lubriportal-api/internal/interfaces/http"
	"github.com/jhoicas/Lubriportal-api/pkg/config"
	"github.com/jhoicas/Lubriportal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Repositorios en memoria con el dataset mock sembrado.
	userRepo, productRepo, inventoryRepo, quoteRepo, cartRepo, orderRepo, err := memory.NewSeededStores()
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar dataset mock")
	}

	snapshotStore := snapshot.NewStore(cfg.Snapshot.Path)

	// Cliente del Service Layer; sin BaseURL la aplicación opera solo con el
	// espejo local y todo sync reporta fallback.
	var remote appcatalog.RemoteCatalog
	var sapOrders httpRouter.RemoteOrders
	if cfg.SAP.BaseURL != "" {
		client := infrasap.NewClient(infrasap.Config{
			BaseURL:   cfg.SAP.BaseURL,
			CompanyDB: cfg.SAP.CompanyDB,
			Username:  cfg.SAP.Username,
			Password:  cfg.SAP.Password,
			Warehouse: cfg.SAP.Warehouse,
		})
		remote = client
		sapOrders = client
	}

	catalogUC := appcatalog.NewUseCase(productRepo, inventoryRepo, remote, log)
	cartUC := appcart.NewUseCase(cartRepo, productRepo, inventoryRepo, log)
	quoteUC := appquote.NewUseCase(quoteRepo, orderRepo, productRepo, cartUC, cfg.Portal.GuestQuoteLimit, log)

	// PDF: confirmación del pedido consolidado
	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator()
	orderPDFUC := appquote.NewPDFUseCase(orderRepo, userRepo, pdfGenerator)

	// Auto-sync periódico mientras la conexión SAP esté activa. El logout apaga
	// la bandera, así que el caso de uso de sesión recibe el syncer.
	syncer := infrasap.NewSyncer(catalogUC, time.Duration(cfg.SAP.SyncMinutes)*time.Minute, log)

	authUC := auth.NewUseCase(userRepo, snapshotStore, syncer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	// Restauración de la sesión persistida (el análogo de leer localStorage al
	// cargar la página). Un snapshot corrupto degrada a invitado.
	if u := authUC.Restore(); u != nil {
		log.Info().Str("username", u.Username).Str("role", u.Role).Msg("sesión restaurada desde snapshot")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go syncer.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lubriportal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		CartUC:    cartUC,
		QuoteUC:   quoteUC,
		PDFUC:     orderPDFUC,
		OrderRepo: orderRepo,
		Resolver:  navigation.NewResolver(),
		Syncer:    syncer,
		SAPOrders: sapOrders,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
