package sales

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain/entity"
)

// SalePDFGenerator genera la hoja de pedido en PDF.
type SalePDFGenerator interface {
	GenerateSalePDF(ctx context.Context, sale *entity.Sale) ([]byte, error)
}
