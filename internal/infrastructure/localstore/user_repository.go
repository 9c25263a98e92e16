package localstore

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/reconcile"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo plantilla de personal sobre el almacén clave-valor.
type UserRepo struct {
	store *Store
	seed  func() []entity.User
}

// NewUserRepository construye el repositorio. seed provee la plantilla base.
func NewUserRepository(store *Store, seed func() []entity.User) *UserRepo {
	return &UserRepo{store: store, seed: seed}
}

func userKey(u entity.User) string { return u.ID }

// List devuelve semilla + guardado, con lo guardado ganando por id. La marca de
// propietario sale siempre de la semilla: un registro guardado no la retira.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	base := r.seed()
	stored, _ := r.stored(ctx, false)
	merged := reconcile.Reconcile(base, stored, userKey)

	owners := make(map[string]struct{})
	for _, u := range base {
		if u.Owner {
			owners[u.ID] = struct{}{}
		}
	}
	for i := range merged {
		if _, ok := owners[merged[i].ID]; ok {
			merged[i].Owner = true
		}
	}
	return merged, nil
}

// Upsert guarda la identidad en la plantilla persistida.
func (r *UserRepo) Upsert(ctx context.Context, user *entity.User) error {
	stored, err := r.stored(ctx, true)
	if err != nil {
		return err
	}
	stored = reconcile.Upsert(stored, *user, userKey)
	records := make([]userRecord, 0, len(stored))
	for _, u := range stored {
		records = append(records, userRecordOf(u))
	}
	return r.store.SetJSON(ctx, KeyUsers, records)
}

func (r *UserRepo) stored(ctx context.Context, strict bool) ([]entity.User, error) {
	records, err := loadList(ctx, r.store, KeyUsers, userRecord.validate, strict)
	if err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toEntity())
	}
	return out, nil
}
