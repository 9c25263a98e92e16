package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/attire-api/internal/application/analytics"
	"github.com/jhoicas/attire-api/internal/application/inventory"
	"github.com/jhoicas/attire-api/internal/application/sales"
	"github.com/jhoicas/attire-api/internal/application/seed"
	"github.com/jhoicas/attire-api/internal/application/session"
	"github.com/jhoicas/attire-api/internal/application/staff"
	"github.com/jhoicas/attire-api/internal/application/timetracking"
	"github.com/jhoicas/attire-api/internal/domain/repository"
	"github.com/jhoicas/attire-api/internal/infrastructure/document"
	"github.com/jhoicas/attire-api/internal/infrastructure/localstore"
	"github.com/jhoicas/attire-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/attire-api/internal/infrastructure/pdf"
	"github.com/jhoicas/attire-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/attire-api/internal/infrastructure/redis"
	"github.com/jhoicas/attire-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/attire-api/internal/interfaces/http"
	"github.com/jhoicas/attire-api/pkg/config"
	"github.com/jhoicas/attire-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Str("inventory", cfg.Inventory.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, closer, err := openKVStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén clave-valor")
	}
	defer closer.Close()

	store := localstore.NewStore(kv, log)
	txRunner := localstore.NewTxRunner()
	userRepo := localstore.NewUserRepository(store, seed.Users)
	sessionRepo := localstore.NewSessionRepository(store)
	timeEntryRepo := localstore.NewTimeEntryRepository(store)

	var (
		productRepo  repository.ProductRepository
		categoryRepo repository.CategoryRepository
		saleRepo     repository.SaleRepository
	)
	switch cfg.Inventory.Backend {
	case "document":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema documental")
		}
		docs := postgres.NewDocumentStore(pool)
		productRepo = document.NewProductRepository(docs, seed.Products)
		categoryRepo = document.NewCategoryRepository(docs, seed.Categories)
		pgSales := postgres.NewSaleRepository(pool)
		if n, err := pgSales.Seed(ctx, seed.Sales()); err != nil {
			log.Warn().Err(err).Msg("sembrar pedidos")
		} else if n > 0 {
			log.Info().Int("pedidos", n).Msg("pedidos sembrados")
		}
		saleRepo = pgSales
	default:
		productRepo = localstore.NewProductRepository(store, seed.Products)
		categoryRepo = localstore.NewCategoryRepository(store, seed.Categories)
		saleRepo = memory.NewSaleRepository(seed.Sales())
	}

	sessionUC := session.NewUseCase(userRepo, sessionRepo, txRunner, session.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := inventory.NewUseCase(productRepo, categoryRepo, txRunner)
	staffUC := staff.NewUseCase(userRepo, txRunner)
	timeUC := timetracking.NewUseCase(timeEntryRepo, userRepo, txRunner)

	// PDF: hoja de pedido de venta
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	salesUC := sales.NewUseCase(saleRepo, pdfGenerator)
	analyticsUC := analytics.NewUseCase(saleRepo, productRepo, cfg.Inventory.LowStockThreshold)

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
		Title:    "Attire API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:   sessionUC,
		InventoryUC: inventoryUC,
		StaffUC:     staffUC,
		TimeUC:      timeUC,
		SalesUC:     salesUC,
		AnalyticsUC: analyticsUC,
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openKVStore abre el almacén clave-valor según STORAGE_DRIVER.
func openKVStore(ctx context.Context, cfg config.StorageConfig) (repository.KeyValueStore, io.Closer, error) {
	switch cfg.Driver {
	case "redis":
		kv := infraredis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err := kv.Ping(ctx); err != nil {
			_ = kv.Close()
			return nil, nil, err
		}
		return kv, kv, nil
	case "memory":
		return memory.NewKVStore(), nopCloser{}, nil
	default:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.RunMigrations(ctx, db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return sqlite.NewKVStore(db), sqlDB, nil
	}
}
