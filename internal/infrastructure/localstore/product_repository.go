package localstore

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/reconcile"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo sobre el almacén clave-valor.
//
// KeyProducts guarda los productos creados (más recientes primero) y las ediciones de
// productos semilla. KeyDeletedProducts guarda los ids semilla eliminados, para que la
// reconciliación no los reviva.
type ProductRepo struct {
	store *Store
	seed  func() []entity.Product
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store *Store, seed func() []entity.Product) *ProductRepo {
	return &ProductRepo{store: store, seed: seed}
}

func productKey(p entity.Product) string { return p.ID }

type productState struct {
	seed    []entity.Product
	stored  []entity.Product
	deleted []string
}

// List devuelve los productos creados primero y luego la línea base reconciliada.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	st, _ := r.load(ctx, false)
	return st.merged(), nil
}

// Create antepone el producto a la colección.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	st, err := r.load(ctx, true)
	if err != nil {
		return err
	}
	st.stored = append([]entity.Product{*p}, st.stored...)
	return r.saveStored(ctx, st.stored)
}

// Update reemplaza el producto con el mismo id.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	st, err := r.load(ctx, true)
	if err != nil {
		return err
	}
	if !st.has(p.ID) {
		return domain.ErrNotFound
	}
	st.stored = reconcile.Upsert(st.stored, *p, productKey)
	return r.saveStored(ctx, st.stored)
}

// Delete elimina el producto; un id inexistente no es error.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	st, err := r.load(ctx, true)
	if err != nil {
		return err
	}
	if !st.has(id) {
		return nil
	}
	// Lápida primero; si luego falla la colección se restauran las lápidas previas.
	tombstoned := st.inSeed(id)
	if tombstoned {
		deleted := append(append([]string(nil), st.deleted...), id)
		if err := r.store.SetJSON(ctx, KeyDeletedProducts, deleted); err != nil {
			return err
		}
	}
	kept := reconcile.Without(st.stored, map[string]struct{}{id: {}}, productKey)
	if len(kept) == len(st.stored) {
		return nil
	}
	if err := r.saveStored(ctx, kept); err != nil {
		if tombstoned {
			r.restoreTombstones(ctx, st.deleted)
		}
		return err
	}
	return nil
}

func (r *ProductRepo) restoreTombstones(ctx context.Context, prev []string) {
	if prev == nil {
		prev = []string{}
	}
	if err := r.store.SetJSON(ctx, KeyDeletedProducts, prev); err != nil {
		r.store.log.Error().Err(err).Msg("no se pudieron restaurar las lápidas tras un borrado fallido")
	}
}

func (r *ProductRepo) load(ctx context.Context, strict bool) (*productState, error) {
	records, err := loadList(ctx, r.store, KeyProducts, productRecord.validate, strict)
	if err != nil {
		return nil, err
	}
	deleted, err := loadList(ctx, r.store, KeyDeletedProducts, validID, strict)
	if err != nil {
		return nil, err
	}
	st := &productState{seed: r.seed(), deleted: deleted}
	for _, rec := range records {
		st.stored = append(st.stored, rec.toEntity())
	}
	return st, nil
}

func (r *ProductRepo) saveStored(ctx context.Context, list []entity.Product) error {
	records := make([]productRecord, 0, len(list))
	for _, p := range list {
		records = append(records, productRecordOf(p))
	}
	return r.store.SetJSON(ctx, KeyProducts, records)
}

func (st *productState) tombstones() map[string]struct{} {
	out := make(map[string]struct{}, len(st.deleted))
	for _, id := range st.deleted {
		out[id] = struct{}{}
	}
	return out
}

func (st *productState) inSeed(id string) bool {
	for _, p := range st.seed {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (st *productState) has(id string) bool {
	for _, p := range st.merged() {
		if p.ID == id {
			return true
		}
	}
	return false
}

// merged reconcilia semilla y guardado, descarta lápidas y presenta primero los
// productos que no pertenecen a la semilla (en el orden guardado).
func (st *productState) merged() []entity.Product {
	all := reconcile.Reconcile(st.seed, st.stored, productKey)
	all = reconcile.Without(all, st.tombstones(), productKey)
	created := make([]entity.Product, 0, len(all))
	baseline := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if st.inSeed(p.ID) {
			baseline = append(baseline, p)
		} else {
			created = append(created, p)
		}
	}
	return append(created, baseline...)
}
