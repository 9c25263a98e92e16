package redis

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere un Redis accesible en REDIS_TEST_ADDR; sin él se omite.
func openTestStore(t *testing.T) *KVStore {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	kv := New(addr, os.Getenv("REDIS_TEST_PASSWORD"), 0, "attire-test:"+uuid.NewString()+":")
	require.NoError(t, kv.Ping(context.Background()))
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKVStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	kv := openTestStore(t)

	_, ok, err := kv.Get(ctx, "attire-users")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "attire-users", []byte(`[]`)))
	require.NoError(t, kv.Set(ctx, "attire-users", []byte(`[{"id":"user-009"}]`)))
	v, ok, err := kv.Get(ctx, "attire-users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"user-009"}]`, string(v))

	require.NoError(t, kv.Remove(ctx, "attire-users"))
	require.NoError(t, kv.Remove(ctx, "attire-users"))
	_, ok, err = kv.Get(ctx, "attire-users")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_ServidorCaido(t *testing.T) {
	kv := New("127.0.0.1:1", "", 0, "attire-test:")
	defer kv.Close()

	_, _, err := kv.Get(context.Background(), "attire-user")
	assert.Error(t, err)
	assert.Error(t, kv.Set(context.Background(), "attire-user", []byte(`{}`)))
}
