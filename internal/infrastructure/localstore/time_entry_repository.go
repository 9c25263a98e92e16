package localstore

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

// TimeEntryRepo libro de fichajes bajo KeyTimeEntries.
type TimeEntryRepo struct {
	store *Store
}

// NewTimeEntryRepository construye el repositorio.
func NewTimeEntryRepository(store *Store) *TimeEntryRepo {
	return &TimeEntryRepo{store: store}
}

// List devuelve todos los fichajes en orden de creación. Un backend caído es error:
// decidir sobre un libro vacío permitiría abrir un segundo turno.
func (r *TimeEntryRepo) List(ctx context.Context) ([]entity.TimeEntry, error) {
	records, err := loadList(ctx, r.store, KeyTimeEntries, timeEntryRecord.validate, true)
	if err != nil {
		return nil, err
	}
	out := make([]entity.TimeEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

// Save reemplaza el libro completo.
func (r *TimeEntryRepo) Save(ctx context.Context, entries []entity.TimeEntry) error {
	records := make([]timeEntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, timeEntryRecordOf(e))
	}
	return r.store.SetJSON(ctx, KeyTimeEntries, records)
}
