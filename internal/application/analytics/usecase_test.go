package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attire-api/internal/application/analytics"
	"github.com/jhoicas/attire-api/internal/application/seed"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/infrastructure/localstore"
	"github.com/jhoicas/attire-api/internal/infrastructure/memory"
	"github.com/jhoicas/attire-api/pkg/logger"
)

func TestDashboard_SeedData(t *testing.T) {
	store := localstore.NewStore(memory.NewKVStore(), logger.Nop())
	uc := analytics.NewUseCase(
		memory.NewSaleRepository(seed.Sales()),
		localstore.NewProductRepository(store, seed.Products),
		5,
	)

	d, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "540", d.TotalRevenue.String())
	assert.Equal(t, "180", d.AverageSale.String())
	assert.Equal(t, map[string]int{entity.SaleFulfilled: 3, entity.SalePending: 2, entity.SaleCancelled: 1}, d.OrdersByStatus)

	require.Len(t, d.MonthlyRevenue, 1)
	assert.Equal(t, "2024-05", d.MonthlyRevenue[0].Period)
	assert.Equal(t, "540", d.MonthlyRevenue[0].Revenue.String())

	require.Len(t, d.RevenueByCategory, 3)
	assert.Equal(t, "Kurta", d.RevenueByCategory[0].Category)
	assert.Equal(t, "270", d.RevenueByCategory[0].Revenue.String())
	assert.Equal(t, "Saree", d.RevenueByCategory[1].Category)
	assert.Equal(t, "Dhoti", d.RevenueByCategory[2].Category)

	require.Len(t, d.TopProducts, 5)
	assert.Equal(t, "Casual Cotton Kurta", d.TopProducts[0].ProductName)
	assert.Equal(t, 2, d.TopProducts[0].Units)
	assert.Equal(t, "Classic White Kurta", d.TopProducts[1].ProductName)

	ids := make([]string, 0, len(d.LowStock))
	for _, p := range d.LowStock {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"2", "5", "7"}, ids)
	assert.Equal(t, 104, d.TotalStock)
}

func TestDashboard_SinPedidos(t *testing.T) {
	store := localstore.NewStore(memory.NewKVStore(), logger.Nop())
	uc := analytics.NewUseCase(memory.NewSaleRepository(nil), localstore.NewProductRepository(store, seed.Products), 0)

	d, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.True(t, d.TotalRevenue.IsZero())
	assert.True(t, d.AverageSale.IsZero())
	assert.Empty(t, d.TopProducts)
	assert.Empty(t, d.LowStock)
}

func TestDashboard_CambioDeEstadoRecalculaIngresos(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewStore(memory.NewKVStore(), logger.Nop())
	saleRepo := memory.NewSaleRepository(seed.Sales())
	uc := analytics.NewUseCase(saleRepo, localstore.NewProductRepository(store, seed.Products), 5)

	require.NoError(t, saleRepo.UpdateStatus(ctx, "ORD-003", entity.SaleFulfilled))
	d, err := uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "890", d.TotalRevenue.String())
	assert.Equal(t, "222.5", d.AverageSale.String())
	assert.Equal(t, 4, d.OrdersByStatus[entity.SaleFulfilled])

	require.NoError(t, saleRepo.UpdateStatus(ctx, "ORD-001", entity.SalePending))
	d, err = uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "640", d.TotalRevenue.String())
}
