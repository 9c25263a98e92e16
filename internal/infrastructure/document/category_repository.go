package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/reconcile"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

type categoryDoc struct {
	Name string `json:"name"`
}

// CategoryRepo categorías en la colección "categories".
type CategoryRepo struct {
	docs repository.DocumentStore
	seed func() []string
}

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(docs repository.DocumentStore, seed func() []string) *CategoryRepo {
	return &CategoryRepo{docs: docs, seed: seed}
}

// List devuelve los nombres sin duplicados. Siembra la colección si está vacía.
func (r *CategoryRepo) List(ctx context.Context) ([]string, error) {
	docs, err := r.docs.FetchAll(ctx, CollectionCategories)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		batch := make([]json.RawMessage, 0)
		for _, name := range r.seed() {
			data, err := json.Marshal(categoryDoc{Name: name})
			if err != nil {
				return nil, err
			}
			batch = append(batch, data)
		}
		if err := r.docs.BatchInsert(ctx, CollectionCategories, batch); err != nil {
			return nil, fmt.Errorf("sembrar categorías: %w", err)
		}
		if docs, err = r.docs.FetchAll(ctx, CollectionCategories); err != nil {
			return nil, err
		}
	}
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		var c categoryDoc
		if err := json.Unmarshal(d.Data, &c); err != nil {
			return nil, fmt.Errorf("decodificar categoría %s: %w", d.ID, err)
		}
		names = append(names, c.Name)
	}
	return reconcile.Strings(nil, names), nil
}

// Add inserta la categoría si no existe.
func (r *CategoryRepo) Add(ctx context.Context, name string) error {
	existing, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c == name {
			return domain.ErrCategoryExists
		}
	}
	data, err := json.Marshal(categoryDoc{Name: name})
	if err != nil {
		return err
	}
	_, err = r.docs.Insert(ctx, CollectionCategories, data)
	return err
}
