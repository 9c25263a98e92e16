package localstore

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/reconcile"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías: las derivadas de la semilla más las agregadas explícitamente.
type CategoryRepo struct {
	store *Store
	seed  func() []string
}

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(store *Store, seed func() []string) *CategoryRepo {
	return &CategoryRepo{store: store, seed: seed}
}

// List devuelve la unión sin duplicados.
func (r *CategoryRepo) List(ctx context.Context) ([]string, error) {
	stored, _ := loadList(ctx, r.store, KeyCategories, validCategory, false)
	return reconcile.Strings(r.seed(), stored), nil
}

// Add agrega name. Comparación exacta.
func (r *CategoryRepo) Add(ctx context.Context, name string) error {
	stored, err := loadList(ctx, r.store, KeyCategories, validCategory, true)
	if err != nil {
		return err
	}
	for _, c := range reconcile.Strings(r.seed(), stored) {
		if c == name {
			return domain.ErrCategoryExists
		}
	}
	return r.store.SetJSON(ctx, KeyCategories, append(stored, name))
}
