package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo pedidos de venta en memoria.
type SaleRepo struct {
	mu    sync.RWMutex
	sales []entity.Sale
}

// NewSaleRepository construye el repositorio con una copia de los pedidos dados.
func NewSaleRepository(sales []entity.Sale) *SaleRepo {
	out := make([]entity.Sale, len(sales))
	copy(out, sales)
	return &SaleRepo{sales: out}
}

// List devuelve una copia de los pedidos.
func (r *SaleRepo) List(_ context.Context) ([]entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

// GetByID busca un pedido por id.
func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sales {
		if s.ID == id {
			sale := s
			return &sale, nil
		}
	}
	return nil, nil
}

// UpdateStatus cambia el estado del pedido.
func (r *SaleRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sales {
		if r.sales[i].ID == id {
			r.sales[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}
