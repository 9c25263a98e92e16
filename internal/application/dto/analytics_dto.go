package dto

import "github.com/shopspring/decimal"

// DashboardResponse KPIs del panel de analítica.
type DashboardResponse struct {
	TotalRevenue      decimal.Decimal   `json:"total_revenue"` // solo pedidos Fulfilled
	AverageSale       decimal.Decimal   `json:"average_sale"`  // ingresos / pedidos Fulfilled
	OrdersByStatus    map[string]int    `json:"orders_by_status"`
	MonthlyRevenue    []PeriodRevenue   `json:"monthly_revenue"`
	RevenueByCategory []CategoryRevenue `json:"revenue_by_category"`
	TopProducts       []TopProduct      `json:"top_products"`
	LowStock          []ProductResponse `json:"low_stock"`
	TotalStock        int               `json:"total_stock"`
}

// PeriodRevenue ingresos de un mes (YYYY-MM).
type PeriodRevenue struct {
	Period  string          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CategoryRevenue ingresos de una categoría.
type CategoryRevenue struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// TopProduct producto por unidades vendidas.
type TopProduct struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Units       int    `json:"units"`
}
