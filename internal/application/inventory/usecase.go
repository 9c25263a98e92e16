// Package inventory implementa el catálogo de prendas y categorías: consultas abiertas a
// cualquier sesión y mutaciones reservadas a administradores.
package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/attire-api/internal/application/dto"
	"github.com/jhoicas/attire-api/internal/application/session"
	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

// filterAll valor de filtro que no restringe.
const filterAll = "All"

// UseCase casos de uso del inventario.
type UseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	tx         repository.TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, categories repository.CategoryRepository, tx repository.TxRunner) *UseCase {
	return &UseCase{products: products, categories: categories, tx: tx}
}

// AddProduct crea un producto con id nuevo y lo antepone al catálogo.
func (uc *UseCase) AddProduct(ctx context.Context, actor *entity.Session, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := session.RequireAdmin(actor); err != nil {
		return nil, err
	}
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.New().String()
	if p.ImageURL == "" {
		p.ImageURL = entity.DefaultImageURL
	}
	if err := uc.tx.Run(ctx, func(ctx context.Context) error {
		return uc.products.Create(ctx, p)
	}); err != nil {
		return nil, err
	}
	out := ToProductResponse(*p)
	return &out, nil
}

// UpdateProduct reemplaza todos los campos salvo el id. La imagen se conserva si in.ImageURL
// viene vacío. ErrNotFound si el id no existe.
func (uc *UseCase) UpdateProduct(ctx context.Context, actor *entity.Session, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := session.RequireAdmin(actor); err != nil {
		return nil, err
	}
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	err = uc.tx.Run(ctx, func(ctx context.Context) error {
		current, err := uc.find(ctx, id)
		if err != nil {
			return err
		}
		if p.ImageURL == "" {
			p.ImageURL = current.ImageURL
		}
		return uc.products.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	out := ToProductResponse(*p)
	return &out, nil
}

// DeleteProduct elimina el producto. Un id inexistente no es error.
func (uc *UseCase) DeleteProduct(ctx context.Context, actor *entity.Session, id string) error {
	if err := session.RequireAdmin(actor); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(ctx context.Context) error {
		return uc.products.Delete(ctx, id)
	})
}

// AddCategory agrega una categoría al final y devuelve la lista resultante.
// ErrCategoryExists si ya existe (comparación exacta tras recortar espacios).
func (uc *UseCase) AddCategory(ctx context.Context, actor *entity.Session, name string) ([]string, error) {
	if err := session.RequireAdmin(actor); err != nil {
		return nil, err
	}
	name = entity.NormalizeCategory(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	var out []string
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		if err := uc.categories.Add(ctx, name); err != nil {
			return err
		}
		var err error
		out, err = uc.categories.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve el catálogo completo.
func (uc *UseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	return uc.Filter(ctx, dto.ProductFilter{})
}

// Filter devuelve los productos que cumplen todos los criterios, en el orden del catálogo.
func (uc *UseCase) Filter(ctx context.Context, f dto.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if matches(f.Gender, p.Gender) && matches(f.Category, p.Category) && matches(f.Occasion, p.Occasion) {
			items = append(items, ToProductResponse(p))
		}
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Get devuelve un producto o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToProductResponse(*p)
	return &out, nil
}

// Categories devuelve las categorías.
func (uc *UseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.categories.List(ctx)
}

func (uc *UseCase) find(ctx context.Context, id string) (*entity.Product, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func matches(want, got string) bool {
	return want == "" || want == filterAll || want == got
}

func productFromRequest(in dto.ProductRequest) (*entity.Product, error) {
	p := &entity.Product{
		Name:     strings.TrimSpace(in.Name),
		Category: entity.NormalizeCategory(in.Category),
		Gender:   in.Gender,
		Size:     strings.TrimSpace(in.Size),
		Color:    strings.TrimSpace(in.Color),
		Fabric:   strings.TrimSpace(in.Fabric),
		Occasion: in.Occasion,
		Stock:    in.Stock,
		ImageURL: strings.TrimSpace(in.ImageURL),
	}
	if p.Name == "" || p.Category == "" || p.Stock < 0 ||
		!entity.ValidGender(p.Gender) || !entity.ValidOccasion(p.Occasion) {
		return nil, domain.ErrInvalidInput
	}
	return p, nil
}

// ToProductResponse proyecta el producto al DTO.
func ToProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Gender:   p.Gender,
		Size:     p.Size,
		Color:    p.Color,
		Fabric:   p.Fabric,
		Occasion: p.Occasion,
		Stock:    p.Stock,
		ImageURL: p.ImageURL,
	}
}
