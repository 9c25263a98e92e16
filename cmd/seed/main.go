// seed prepara el backend documental del inventario en PostgreSQL: crea el esquema,
// siembra las colecciones de productos y categorías si están vacías e inserta los
// pedidos de venta base que falten.
//
// Uso: go run ./cmd/seed
// Lee la conexión de DATABASE_URL o DB_* (ver pkg/config).
package main

import (
	"context"
	"time"

	"github.com/jhoicas/attire-api/internal/application/seed"
	"github.com/jhoicas/attire-api/internal/infrastructure/document"
	"github.com/jhoicas/attire-api/internal/infrastructure/postgres"
	"github.com/jhoicas/attire-api/pkg/config"
	"github.com/jhoicas/attire-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	docs := postgres.NewDocumentStore(pool)
	products, err := document.NewProductRepository(docs, seed.Products).List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar productos")
	}
	categories, err := document.NewCategoryRepository(docs, seed.Categories).List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar categorías")
	}
	inserted, err := postgres.NewSaleRepository(pool).Seed(ctx, seed.Sales())
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar pedidos")
	}

	log.Info().
		Int("productos", len(products)).
		Int("categorias", len(categories)).
		Int("pedidos_nuevos", inserted).
		Msg("backend documental listo")
}
