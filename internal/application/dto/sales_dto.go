package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemResponse línea de un pedido.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse pedido de venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Date          time.Time          `json:"date"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	Items         []SaleItemResponse `json:"items"`
}

// UpdateSaleStatusRequest nuevo estado de un pedido.
type UpdateSaleStatusRequest struct {
	Status string `json:"status"` // Fulfilled | Pending | Cancelled
}
