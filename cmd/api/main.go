package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appbilling "github.com/juguetron/agent-api/internal/application/billing"
	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/application/erp"
	"github.com/juguetron/agent-api/internal/application/inventory"
	"github.com/juguetron/agent-api/internal/application/orders"
	"github.com/juguetron/agent-api/internal/application/search"
	"github.com/juguetron/agent-api/internal/application/support"
	"github.com/juguetron/agent-api/internal/domain/cfdi"
	"github.com/juguetron/agent-api/internal/infrastructure/sat"
	"github.com/juguetron/agent-api/internal/infrastructure/vtex"
	httpRouter "github.com/juguetron/agent-api/internal/interfaces/http"
	"github.com/juguetron/agent-api/pkg/config"
	"github.com/juguetron/agent-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	// rand.Rand no es seguro para concurrencia y cada caso de uso protege sus
	// sorteos con su propio mutex, así que cada uno recibe un generador propio
	// derivado de la semilla raíz.
	seeder := rand.New(rand.NewSource(time.Now().UnixNano()))
	newRand := func() *rand.Rand { return rand.New(rand.NewSource(seeder.Int63())) }

	vtexClient := vtex.NewClient(cfg.VTEX)
	searchUC := search.NewUseCase(vtexClient)

	stockUC := inventory.NewStockUseCase(newRand(), nil)
	trackingUC := orders.NewTrackingUseCase(newRand(), nil)
	ticketUC := support.NewTicketUseCase(newRand())
	erpUC := erp.NewInvoiceUseCase(newRand(), cfg.Billing.ERPPDFBaseURL)

	allocator := cfdi.NewFolioAllocator(cfg.Billing.InvoicePrefix, cfg.Billing.FolioStart)
	stamper := sat.NewCFDIStamper()
	billingUC := appbilling.NewGenerateInvoiceUseCase(allocator, stamper, appbilling.Config{
		PDFBaseURL: cfg.Billing.PDFBaseURL,
		SATBaseURL: cfg.Billing.SATBaseURL,
	}, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Juguetron API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.StatusResponse{Status: "ok", Service: cfg.App.Name, Version: cfg.App.Version})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.StatusResponse{Status: "healthy", Service: cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SearchUC:   searchUC,
		StockUC:    stockUC,
		TrackingUC: trackingUC,
		TicketUC:   ticketUC,
		ERPUC:      erpUC,
		BillingUC:  billingUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
