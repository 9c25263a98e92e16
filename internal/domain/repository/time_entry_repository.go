package repository

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain/entity"
)

// TimeEntryRepository persiste el libro de fichajes completo.
type TimeEntryRepository interface {
	List(ctx context.Context) ([]entity.TimeEntry, error)
	Save(ctx context.Context, entries []entity.TimeEntry) error
}
