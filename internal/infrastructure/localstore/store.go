// Package localstore implementa el adaptador tipado del almacén clave-valor: serializa las
// colecciones a JSON bajo claves fijas y reconcilia con el conjunto semilla al leer.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/repository"
	"github.com/jhoicas/attire-api/pkg/logger"
)

// Claves persistidas. No cambiar: los datos guardados quedarían huérfanos.
const (
	KeySession         = "attire-user"
	KeyUsers           = "attire-users"
	KeyProducts        = "attire-products"
	KeyDeletedProducts = "attire-products-deleted"
	KeyCategories      = "attire-categories"
	KeyTimeEntries     = "attire-time-entries"
)

// ErrMalformed indica que el blob guardado no es JSON válido o no respeta la forma esperada.
var ErrMalformed = errors.New("localstore: dato guardado malformado")

// Store envuelve un KeyValueStore con codificación JSON.
type Store struct {
	kv  repository.KeyValueStore
	log *logger.Logger
}

// NewStore construye el adaptador.
func NewStore(kv repository.KeyValueStore, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{kv: kv, log: log}
}

// GetJSON decodifica la clave en dst. Devuelve false si la clave no existe.
// Errores: domain.ErrStorageUnavailable (envolviendo ErrMalformed si el blob es inválido).
func (s *Store) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: leer %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %w: %s: %v", domain.ErrStorageUnavailable, ErrMalformed, key, err)
	}
	return true, nil
}

// SetJSON serializa v y lo guarda bajo key.
func (s *Store) SetJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("no se pudo escribir en el almacén")
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

// Remove elimina la clave.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.kv.Remove(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("no se pudo eliminar la clave")
		return fmt.Errorf("%w: eliminar %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

// warnFallback registra una lectura fallida que se resuelve con los datos semilla.
func (s *Store) warnFallback(err error, key string) {
	s.log.Warn().Err(err).Str("key", key).Msg("lectura fallida, se usan los datos semilla")
}

// loadList lee una lista validada. En lecturas de escritura (strict) un blob malformado
// se descarta con aviso y el backend caído es un error; en lecturas puras todo error
// se degrada a lista vacía.
func loadList[R any](ctx context.Context, s *Store, key string, validate func(R) error, strict bool) ([]R, error) {
	var list []R
	_, err := s.GetJSON(ctx, key, &list)
	if err == nil {
		for _, r := range list {
			if verr := validate(r); verr != nil {
				err = fmt.Errorf("%w: %w: %s: %v", domain.ErrStorageUnavailable, ErrMalformed, key, verr)
				break
			}
		}
	}
	if err == nil {
		return list, nil
	}
	if strict && !errors.Is(err, ErrMalformed) {
		return nil, err
	}
	s.warnFallback(err, key)
	return nil, nil
}
