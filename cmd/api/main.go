package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"petclinic/docs"
	"petclinic/internal/config"
	"petclinic/internal/database"
	"petclinic/internal/database/migration"
	handlers "petclinic/internal/http/handler"
	"petclinic/internal/http/middleware"
	"petclinic/internal/logger"
	"petclinic/internal/otel"
	"petclinic/internal/repository/sqlstore"
	"petclinic/internal/service"
	"petclinic/internal/storage"
)

// @title Petclinic API
// @version 1.0
// @description Owners, pets, visits and veterinarians of a small animal clinic.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("info", time.UTC)
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	loc := logger.Location(cfg.Timezone)
	log := logger.New(cfg.LogLevel, loc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error().Err(err).Msg("tracing_shutdown_failed")
		}
	}()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	if cfg.Database.Seed {
		if err := migration.Seed(ctx, db, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	// Photo storage is optional; without it the photo endpoints answer 503.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		if objStore, err = storage.NewMinIO(cfg.MinIO); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
	} else {
		log.Warn().Str("component", "storage").Msg("MINIO_ENDPOINT not set, pet photos disabled")
	}

	owners := sqlstore.NewOwnerStore(db)
	pets := sqlstore.NewPetStore(db)
	visits := sqlstore.NewVisitStore(db)
	vets := sqlstore.NewVetStore(db)

	svcs := handlers.Services{
		Owners: service.NewOwnerService(owners),
		Pets:   service.NewPetService(owners, pets),
		Visits: service.NewVisitService(pets, visits),
		Vets:   service.NewVetService(vets),
		Photos: service.NewPhotoService(objStore, pets),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, cfg.Database.Driver),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, db.DB, reg, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("server_shutdown_failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("db_driver", cfg.Database.Driver).Msg("server_starting")
	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("failed to start server")
	}
}
