package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jhoicas/attire-api/internal/application/seed"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/infrastructure/localstore"
)

func openTestStore(t *testing.T) *KVStore {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "attire_test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewKVStore(db)
}

func TestKVStoreSetOverwritesAndRemoves(t *testing.T) {
	ctx := context.Background()
	kv := openTestStore(t)

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := kv.Set(ctx, "k", []byte(`[1]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", []byte(`[1,2]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `[1,2]` {
		t.Fatalf("unexpected value %q", got)
	}
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("key should be gone")
	}
}

func TestRosterSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	kv := openTestStore(t)

	repo := localstore.NewUserRepository(localstore.NewStore(kv, nil), seed.Users)
	user := entity.User{ID: "user-900", Name: "Neha", Email: "neha@example.com", Password: "pw", Role: entity.RoleSales, TotalHours: 1.5}
	if err := repo.Upsert(ctx, &user); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	again := localstore.NewUserRepository(localstore.NewStore(kv, nil), seed.Users)
	users, err := again.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	last := users[len(users)-1]
	if last.ID != "user-900" || last.TotalHours != 1.5 {
		t.Fatalf("unexpected last user %+v", last)
	}
}
