package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/fast-api/internal/application/catalog"
	"github.com/jhoicas/fast-api/internal/application/export"
	"github.com/jhoicas/fast-api/internal/application/ledger"
	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog *catalog.UseCase
	Ledger  *ledger.UseCase
	Export  *export.UseCase
	Log     *logger.Logger
	// Metrics se expone en /metrics si no es nil.
	Metrics prometheus.Gatherer
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log))

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Catalog)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/import", productHandler.Import)
	products.Get("/:code", productHandler.Lookup)

	entryHandler := NewEntryHandler(deps.Ledger, deps.Catalog)
	exportHandler := NewExportHandler(deps.Export)

	// Panadería
	bakery := api.Group("/bakery")
	bakery.Post("/entries", entryHandler.CreateStockEntry)
	bakery.Get("/entries", entryHandler.ListStockEntries)
	bakery.Delete("/entries/:id", entryHandler.Delete(entity.KindBakery))
	bakery.Get("/export", exportHandler.Export(entity.KindBakery))
	bakery.Get("/summary", exportHandler.Summary(entity.KindBakery))

	// Carnicería
	meat := api.Group("/meat")
	meat.Post("/transformations", entryHandler.CreateTransformation)
	meat.Get("/transformations", entryHandler.ListTransformations)
	meat.Delete("/transformations/:id", entryHandler.Delete(entity.KindMeat))
	meat.Get("/export", exportHandler.Export(entity.KindMeat))
	meat.Get("/summary", exportHandler.Summary(entity.KindMeat))
}
