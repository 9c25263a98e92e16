// Package document implementa los repositorios del inventario sobre un DocumentStore
// (backend documental alternativo), con siembra en el primer arranque.
package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

// Nombres de colección.
const (
	CollectionProducts   = "products"
	CollectionCategories = "categories"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

type productDoc struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Gender   string `json:"gender"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Fabric   string `json:"fabric"`
	Occasion string `json:"occasion"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"imageUrl"`
}

func productDocOf(p entity.Product) productDoc {
	return productDoc{
		Name: p.Name, Category: p.Category, Gender: p.Gender, Size: p.Size, Color: p.Color,
		Fabric: p.Fabric, Occasion: p.Occasion, Stock: p.Stock, ImageURL: p.ImageURL,
	}
}

func (d productDoc) toEntity(id string) entity.Product {
	return entity.Product{
		ID: id, Name: d.Name, Category: d.Category, Gender: d.Gender, Size: d.Size, Color: d.Color,
		Fabric: d.Fabric, Occasion: d.Occasion, Stock: d.Stock, ImageURL: d.ImageURL,
	}
}

// ProductRepo productos en la colección "products". Los ids los asigna el backend.
type ProductRepo struct {
	docs repository.DocumentStore
	seed func() []entity.Product
}

// NewProductRepository construye el repositorio.
func NewProductRepository(docs repository.DocumentStore, seed func() []entity.Product) *ProductRepo {
	return &ProductRepo{docs: docs, seed: seed}
}

// List devuelve los productos, más recientes primero. Siembra la colección si está vacía.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	docs, err := r.docs.FetchAll(ctx, CollectionProducts)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		if docs, err = r.seedCollection(ctx); err != nil {
			return nil, err
		}
	}
	out := make([]entity.Product, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		var d productDoc
		if err := json.Unmarshal(docs[i].Data, &d); err != nil {
			return nil, fmt.Errorf("decodificar producto %s: %w", docs[i].ID, err)
		}
		out = append(out, d.toEntity(docs[i].ID))
	}
	return out, nil
}

// Create inserta el producto y actualiza p.ID con el id asignado por el backend.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	data, err := json.Marshal(productDocOf(*p))
	if err != nil {
		return err
	}
	id, err := r.docs.Insert(ctx, CollectionProducts, data)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update reemplaza los campos del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	data, err := json.Marshal(productDocOf(*p))
	if err != nil {
		return err
	}
	return r.docs.Update(ctx, CollectionProducts, p.ID, data)
}

// Delete elimina el producto.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, CollectionProducts, id)
}

// seedCollection inserta la semilla en orden inverso: List invierte el orden de inserción
// para mostrar primero lo más nuevo y así la semilla conserva su orden original.
func (r *ProductRepo) seedCollection(ctx context.Context) ([]repository.Document, error) {
	seed := r.seed()
	batch := make([]json.RawMessage, 0, len(seed))
	for i := len(seed) - 1; i >= 0; i-- {
		data, err := json.Marshal(productDocOf(seed[i]))
		if err != nil {
			return nil, err
		}
		batch = append(batch, data)
	}
	if err := r.docs.BatchInsert(ctx, CollectionProducts, batch); err != nil {
		return nil, fmt.Errorf("sembrar productos: %w", err)
	}
	return r.docs.FetchAll(ctx, CollectionProducts)
}
