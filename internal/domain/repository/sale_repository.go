package repository

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain/entity"
)

// SaleRepository acceso a los pedidos de venta. Solo el estado es mutable.
type SaleRepository interface {
	List(ctx context.Context) ([]entity.Sale, error)
	// GetByID devuelve nil, nil si el pedido no existe.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// UpdateStatus devuelve domain.ErrNotFound si el pedido no existe.
	UpdateStatus(ctx context.Context, id, status string) error
}
