package localstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attire-api/internal/application/seed"
	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/infrastructure/localstore"
	"github.com/jhoicas/attire-api/internal/infrastructure/memory"
)

// brokenKV simula un almacenamiento no disponible.
type brokenKV struct{}

func (brokenKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("quota exceeded")
}
func (brokenKV) Set(context.Context, string, []byte) error { return errors.New("quota exceeded") }
func (brokenKV) Remove(context.Context, string) error      { return errors.New("quota exceeded") }

// failingKeyKV delega en memoria salvo las escrituras a failKey.
type failingKeyKV struct {
	*memory.KVStore
	failKey string
}

func (f failingKeyKV) Set(ctx context.Context, key string, value []byte) error {
	if key == f.failKey {
		return errors.New("down")
	}
	return f.KVStore.Set(ctx, key, value)
}

func newStore(t *testing.T) (*localstore.Store, *memory.KVStore) {
	t.Helper()
	kv := memory.NewKVStore()
	return localstore.NewStore(kv, nil), kv
}

func TestStore_GetJSON_Malformed(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	require.NoError(t, kv.Set(ctx, "k", []byte("{no es json")))

	var v map[string]any
	ok, err := store.GetJSON(ctx, "k", &v)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.ErrorIs(t, err, localstore.ErrMalformed)
}

func TestUserRepo_StoredOverridesSeed(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	require.NoError(t, kv.Set(ctx, localstore.KeyUsers,
		[]byte(`[{"id":"user-001","name":"Admin User","email":"deepakadimoolam1412@gmail.com","role":"sales","totalHours":0}]`)))

	repo := localstore.NewUserRepository(store, seed.Users)
	users, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, users, len(seed.Users()))
	assert.Equal(t, "user-001", users[0].ID)
	assert.Equal(t, entity.RoleSales, users[0].Role, "el registro guardado gana")
}

func TestUserRepo_StoredSinOwnerConservaPropietario(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	require.NoError(t, kv.Set(ctx, localstore.KeyUsers,
		[]byte(`[{"id":"user-001","name":"Admin User","email":"deepakadimoolam1412@gmail.com","password":"Deepak1412","role":"admin","totalHours":3}]`)))

	users, err := localstore.NewUserRepository(store, seed.Users).List(ctx)
	require.NoError(t, err)
	require.Equal(t, "user-001", users[0].ID)
	assert.Equal(t, 3.0, users[0].TotalHours, "el registro guardado gana")
	assert.True(t, users[0].Owner, "la marca de propietario viene de la semilla")
}

func TestUserRepo_MalformedFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	require.NoError(t, kv.Set(ctx, localstore.KeyUsers, []byte(`[{"id":"x","email":"a@b","role":"root"}]`)))

	users, err := localstore.NewUserRepository(store, seed.Users).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Users(), users)
}

func TestUserRepo_UnavailableStore(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewUserRepository(localstore.NewStore(brokenKV{}, nil), seed.Users)

	users, err := repo.List(ctx)
	require.NoError(t, err, "las lecturas degradan a la semilla")
	assert.Len(t, users, len(seed.Users()))

	err = repo.Upsert(ctx, &entity.User{ID: "u", Email: "u@x", Role: entity.RoleSales})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestUserRepo_UpsertAppendsAndReplaces(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := localstore.NewUserRepository(store, seed.Users)

	u := entity.User{ID: "user-100", Name: "Kavya", Email: "kavya@example.com", Password: "pw", Role: entity.RoleSales}
	require.NoError(t, repo.Upsert(ctx, &u))
	u.TotalHours = 2.5
	require.NoError(t, repo.Upsert(ctx, &u))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, len(seed.Users())+1)
	assert.Equal(t, 2.5, users[len(users)-1].TotalHours)
}

func TestSessionRepo_RoundTripAndCorruption(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	repo := localstore.NewSessionRepository(store)

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.Save(ctx, &entity.Session{ID: "user-002", Name: "Priya", Email: "p@x", Role: entity.RoleSales}))
	s, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "user-002", s.ID)

	raw, ok, _ := kv.Get(ctx, localstore.KeySession)
	require.True(t, ok)
	assert.NotContains(t, string(raw), "password")

	require.NoError(t, kv.Set(ctx, localstore.KeySession, []byte(`{"id":"user-002","role":"superuser"}`)))
	s, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s, "una forma inválida cuenta como sesión ausente")

	require.NoError(t, repo.Clear(ctx))
	_, ok, _ = kv.Get(ctx, localstore.KeySession)
	assert.False(t, ok)
}

func TestProductRepo_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := localstore.NewProductRepository(store, seed.Products)

	p := entity.Product{ID: "p-new", Name: "Ivory Sherwani", Category: "Sherwani", Gender: entity.GenderMen, Occasion: entity.OccasionWedding, Stock: 4}
	require.NoError(t, repo.Create(ctx, &p))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(seed.Products())+1)
	assert.Equal(t, "p-new", list[0].ID, "los productos nuevos se anteponen")

	edited := seed.Products()[1]
	edited.Stock = 0
	require.NoError(t, repo.Update(ctx, &edited))
	list, _ = repo.List(ctx)
	assert.Equal(t, 0, list[2].Stock, "la edición de un producto semilla conserva su posición")

	assert.ErrorIs(t, repo.Update(ctx, &entity.Product{ID: "nope"}), domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "1"), "borrar dos veces no es error")
	require.NoError(t, repo.Delete(ctx, "p-new"))
	list, _ = repo.List(ctx)
	require.Len(t, list, len(seed.Products())-1)
	for _, item := range list {
		assert.NotEqual(t, "1", item.ID, "el producto semilla eliminado no revive")
		assert.NotEqual(t, "p-new", item.ID)
	}
}

func TestProductRepo_DeleteFallaLapidaConservaEdicion(t *testing.T) {
	ctx := context.Background()
	kv := failingKeyKV{KVStore: memory.NewKVStore(), failKey: localstore.KeyDeletedProducts}
	repo := localstore.NewProductRepository(localstore.NewStore(kv, nil), seed.Products)

	edited := seed.Products()[0]
	edited.Stock = 999
	require.NoError(t, repo.Update(ctx, &edited))

	err := repo.Delete(ctx, edited.ID)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	list, _ := repo.List(ctx)
	require.Equal(t, edited.ID, list[0].ID)
	assert.Equal(t, 999, list[0].Stock, "la edición sobrevive al borrado fallido")
}

func TestProductRepo_DeleteFallaColeccionRestauraLapidas(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewKVStore()
	repo := localstore.NewProductRepository(localstore.NewStore(mem, nil), seed.Products)

	edited := seed.Products()[0]
	edited.Stock = 999
	require.NoError(t, repo.Update(ctx, &edited))

	broken := failingKeyKV{KVStore: mem, failKey: localstore.KeyProducts}
	repo = localstore.NewProductRepository(localstore.NewStore(broken, nil), seed.Products)
	err := repo.Delete(ctx, edited.ID)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	list, _ := repo.List(ctx)
	require.Equal(t, edited.ID, list[0].ID, "el producto no desaparece")
	assert.Equal(t, 999, list[0].Stock)
}

func TestCategoryRepo_AddTwice(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := localstore.NewCategoryRepository(store, seed.Categories)

	require.NoError(t, repo.Add(ctx, "Sherwani"))
	assert.ErrorIs(t, repo.Add(ctx, "Sherwani"), domain.ErrCategoryExists)
	assert.ErrorIs(t, repo.Add(ctx, "Saree"), domain.ErrCategoryExists)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	count := 0
	for _, c := range list {
		if c == "Sherwani" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTimeEntryRepo_UnavailableIsError(t *testing.T) {
	repo := localstore.NewTimeEntryRepository(localstore.NewStore(brokenKV{}, nil))
	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestTxRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := localstore.NewTxRunner().Run(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
