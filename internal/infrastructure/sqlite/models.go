package sqlite

import "time"

// KVEntryModel fila del almacén clave-valor.
type KVEntryModel struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntryModel) TableName() string { return "kv_entries" }
