package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de venta.
const (
	SaleFulfilled = "Fulfilled"
	SalePending   = "Pending"
	SaleCancelled = "Cancelled"
)

// SaleItem línea de un pedido.
type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       decimal.Decimal // precio unitario
}

// Subtotal devuelve Price * Quantity.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale pedido de venta. Tras su creación solo cambia Status.
type Sale struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Date          time.Time
	Total         decimal.Decimal
	Status        string
	Items         []SaleItem
}

// ValidSaleStatus indica si s es un estado soportado.
func ValidSaleStatus(s string) bool {
	return s == SaleFulfilled || s == SalePending || s == SaleCancelled
}
