// Package sqlite implementa el almacén clave-valor persistente sobre SQLite (driver puro Go).
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// Open abre la base de datos en path.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
	}, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
}

// KVStore almacén clave-valor sobre la tabla kv_entries.
type KVStore struct {
	db *gorm.DB
}

// NewKVStore construye el almacén. La base debe estar migrada (RunMigrations).
func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{db: db}
}

// Get lee la clave.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var m KVEntryModel
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get kv %s: %w", key, err)
	}
	return m.Value, true, nil
}

// Set inserta o reemplaza la clave.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	m := KVEntryModel{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("set kv %s: %w", key, err)
	}
	return nil
}

// Remove elimina la clave.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&KVEntryModel{}).Error; err != nil {
		return fmt.Errorf("delete kv %s: %w", key, err)
	}
	return nil
}
