package repository

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// List devuelve la colección autoritativa en su orden de presentación.
	List(ctx context.Context) ([]entity.Product, error)
	// Create antepone el producto a la colección.
	Create(ctx context.Context, product *entity.Product) error
	// Update reemplaza el producto con el mismo ID. ErrNotFound si no existe.
	Update(ctx context.Context, product *entity.Product) error
	// Delete es idempotente.
	Delete(ctx context.Context, id string) error
}
