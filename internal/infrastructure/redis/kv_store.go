// Package redis implementa el almacén clave-valor sobre Redis, fuera del proceso.
// Las escrituras se serializan con un cerrojo local: solo una instancia del servicio
// puede usar un mismo prefijo en un mismo Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore almacén clave-valor. A diferencia de una caché, los errores de Redis se propagan:
// el adaptador tipado decide si degradar a la semilla.
type KVStore struct {
	client *redis.Client
	prefix string
}

// New crea el cliente Redis.
func New(addr, password string, db int, prefix string) *KVStore {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &KVStore{client: redis.NewClient(opts), prefix: prefix}
}

// Ping verifica la conexión.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close libera el cliente.
func (s *KVStore) Close() error {
	return s.client.Close()
}

// Get lee la clave.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return res, true, nil
}

// Set guarda la clave sin expiración.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Remove elimina la clave.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
