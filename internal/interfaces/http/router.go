package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juguetron/agent-api/internal/application/billing"
	"github.com/juguetron/agent-api/internal/application/erp"
	"github.com/juguetron/agent-api/internal/application/inventory"
	"github.com/juguetron/agent-api/internal/application/orders"
	"github.com/juguetron/agent-api/internal/application/search"
	"github.com/juguetron/agent-api/internal/application/support"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SearchUC   *search.UseCase
	StockUC    *inventory.StockUseCase
	TrackingUC *orders.TrackingUseCase
	TicketUC   *support.TicketUseCase
	ERPUC      *erp.InvoiceUseCase
	BillingUC  *billing.GenerateInvoiceUseCase
}

// Router registra las rutas de la API. Las rutas replican el contrato del
// portal consumido por los agentes, por eso cuelgan de la raíz y no de /api.
func Router(app *fiber.App, deps RouterDeps) {
	searchHandler := NewSearchHandler(deps.SearchUC)
	app.Get("/search", searchHandler.Get)
	app.Post("/search", searchHandler.Post)

	app.Post("/request_stock_check", NewStockHandler(deps.StockUC).Check)
	app.Post("/request_order_tracking", NewTrackingHandler(deps.TrackingUC).Track)
	app.Post("/request_create_zendesk_ticket", NewTicketHandler(deps.TicketUC).Create)
	app.Post("/request_invoice_generation", NewERPInvoiceHandler(deps.ERPUC).Generate)
	app.Post("/generate_cfdi_invoice", NewBillingHandler(deps.BillingUC).Generate)
}
