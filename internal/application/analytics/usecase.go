// Package analytics calcula los indicadores del panel: ingresos, pedidos por estado,
// categorías y productos más vendidos, y existencias bajas.
package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/attire-api/internal/application/dto"
	"github.com/jhoicas/attire-api/internal/application/inventory"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

const (
	topProductsLimit  = 5
	uncategorized     = "Uncategorized"
	monthPeriodLayout = "2006-01"
)

// UseCase panel de analítica.
type UseCase struct {
	sales             repository.SaleRepository
	products          repository.ProductRepository
	lowStockThreshold int
}

// NewUseCase construye el caso de uso. Un producto con stock <= lowStockThreshold se
// considera con existencias bajas.
func NewUseCase(sales repository.SaleRepository, products repository.ProductRepository, lowStockThreshold int) *UseCase {
	return &UseCase{sales: sales, products: products, lowStockThreshold: lowStockThreshold}
}

// Dashboard calcula los KPIs. Los ingresos cuentan solo pedidos Fulfilled; las unidades
// vendidas excluyen los cancelados.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	categoryOf := make(map[string]string, len(products))
	for _, p := range products {
		categoryOf[p.ID] = p.Category
	}

	out := &dto.DashboardResponse{
		TotalRevenue:   decimal.Zero,
		AverageSale:    decimal.Zero,
		OrdersByStatus: map[string]int{entity.SaleFulfilled: 0, entity.SalePending: 0, entity.SaleCancelled: 0},
	}
	monthly := map[string]decimal.Decimal{}
	byCategory := map[string]decimal.Decimal{}
	units := map[string]*dto.TopProduct{}

	for _, s := range sales {
		out.OrdersByStatus[s.Status]++
		if s.Status != entity.SaleCancelled {
			for _, it := range s.Items {
				tp, ok := units[it.ProductID]
				if !ok {
					tp = &dto.TopProduct{ProductID: it.ProductID, ProductName: it.ProductName}
					units[it.ProductID] = tp
				}
				tp.Units += it.Quantity
			}
		}
		if s.Status != entity.SaleFulfilled {
			continue
		}
		out.TotalRevenue = out.TotalRevenue.Add(s.Total)
		period := s.Date.UTC().Format(monthPeriodLayout)
		monthly[period] = monthly[period].Add(s.Total)
		for _, it := range s.Items {
			cat, ok := categoryOf[it.ProductID]
			if !ok || cat == "" {
				cat = uncategorized
			}
			byCategory[cat] = byCategory[cat].Add(it.Subtotal())
		}
	}

	if n := out.OrdersByStatus[entity.SaleFulfilled]; n > 0 {
		out.AverageSale = out.TotalRevenue.Div(decimal.NewFromInt(int64(n))).Round(2)
	}

	for period, rev := range monthly {
		out.MonthlyRevenue = append(out.MonthlyRevenue, dto.PeriodRevenue{Period: period, Revenue: rev})
	}
	sort.Slice(out.MonthlyRevenue, func(i, j int) bool {
		return out.MonthlyRevenue[i].Period < out.MonthlyRevenue[j].Period
	})

	for cat, rev := range byCategory {
		out.RevenueByCategory = append(out.RevenueByCategory, dto.CategoryRevenue{Category: cat, Revenue: rev})
	}
	sort.Slice(out.RevenueByCategory, func(i, j int) bool {
		a, b := out.RevenueByCategory[i], out.RevenueByCategory[j]
		if !a.Revenue.Equal(b.Revenue) {
			return a.Revenue.GreaterThan(b.Revenue)
		}
		return a.Category < b.Category
	})

	for _, tp := range units {
		out.TopProducts = append(out.TopProducts, *tp)
	}
	sort.Slice(out.TopProducts, func(i, j int) bool {
		a, b := out.TopProducts[i], out.TopProducts[j]
		if a.Units != b.Units {
			return a.Units > b.Units
		}
		return a.ProductName < b.ProductName
	})
	if len(out.TopProducts) > topProductsLimit {
		out.TopProducts = out.TopProducts[:topProductsLimit]
	}

	out.LowStock = make([]dto.ProductResponse, 0)
	for _, p := range products {
		out.TotalStock += p.Stock
		if p.Stock <= uc.lowStockThreshold {
			out.LowStock = append(out.LowStock, inventory.ToProductResponse(p))
		}
	}
	return out, nil
}
