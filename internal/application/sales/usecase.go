// Package sales expone los pedidos de venta, el cambio de estado y su exportación a PDF.
package sales

import (
	"context"

	"github.com/jhoicas/attire-api/internal/application/dto"
	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

// UseCase casos de uso de pedidos.
type UseCase struct {
	repo repository.SaleRepository
	pdf  SalePDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.SaleRepository, pdf SalePDFGenerator) *UseCase {
	return &UseCase{repo: repo, pdf: pdf}
}

// List devuelve los pedidos, opcionalmente filtrados por estado ("" o "All" no filtran).
func (uc *UseCase) List(ctx context.Context, status string) ([]dto.SaleResponse, error) {
	if status != "" && status != "All" && !entity.ValidSaleStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for i := range list {
		if status == "" || status == "All" || list[i].Status == status {
			out = append(out, toSaleResponse(&list[i]))
		}
	}
	return out, nil
}

// Get devuelve un pedido o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toSaleResponse(s)
	return &out, nil
}

// UpdateStatus cambia el estado de un pedido. Cualquier sesión puede hacerlo.
func (uc *UseCase) UpdateStatus(ctx context.Context, actor *entity.Session, id, status string) (*dto.SaleResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if !entity.ValidSaleStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// ExportPDF genera la hoja del pedido.
func (uc *UseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSalePDF(ctx, s)
}

func (uc *UseCase) find(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Subtotal(),
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		CustomerName:  s.CustomerName,
		CustomerEmail: s.CustomerEmail,
		Date:          s.Date,
		Total:         s.Total,
		Status:        s.Status,
		Items:         items,
	}
}
