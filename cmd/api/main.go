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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/fast-api/internal/application/catalog"
	"github.com/jhoicas/fast-api/internal/application/export"
	"github.com/jhoicas/fast-api/internal/application/ledger"
	"github.com/jhoicas/fast-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/fast-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fast-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/fast-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/fast-api/internal/interfaces/http"
	"github.com/jhoicas/fast-api/pkg/config"
	"github.com/jhoicas/fast-api/pkg/logger"
	"github.com/jhoicas/fast-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer st.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewRecorder(reg)
	loc := cfg.App.Location()

	// Caché del catálogo: explícita y opcional (CATALOG_CACHE=true)
	var catalogCache catalog.Cache
	if cfg.Catalog.Cache {
		catalogCache = cache.NewCatalogCache()
	}
	catalogUC := catalog.NewUseCase(st.Tx, st.Repos.Products, catalogCache, log, rec)
	ledgerUC := ledger.NewUseCase(st.Tx, st.Repos,
		ledger.WithLocation(loc),
		ledger.WithLogger(log),
		ledger.WithMetrics(rec),
		ledger.WithCatalogInvalidator(catalogUC),
	)
	exportUC := export.NewUseCase(ledgerUC, spreadsheet.NewXLSXWriter(cfg.App.Name),
		export.WithLocation(loc),
		export.WithLogger(log),
		export.WithMetrics(rec),
		export.WithSummaryRenderer(infrapdf.NewSummaryRenderer(cfg.App.Name)),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    12 << 20,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "FAST API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("documento swagger no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "driver": st.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog: catalogUC,
		Ledger:  ledgerUC,
		Export:  exportUC,
		Log:     log,
		Metrics: reg,
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
