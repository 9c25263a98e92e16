package repository

import (
	"context"
	"encoding/json"
)

// Document es un registro de una colección documental: ID asignado por el backend y cuerpo JSON.
type Document struct {
	ID   string
	Data json.RawMessage
}

// DocumentStore define el backend documental alternativo del inventario (colecciones con nombre).
type DocumentStore interface {
	FetchAll(ctx context.Context, collection string) ([]Document, error)
	Insert(ctx context.Context, collection string, data json.RawMessage) (string, error)
	// Update fusiona fields sobre el documento. ErrNotFound si id no existe.
	Update(ctx context.Context, collection, id string, fields json.RawMessage) error
	Delete(ctx context.Context, collection, id string) error
	// BatchInsert se usa solo para la siembra inicial de colecciones vacías.
	BatchInsert(ctx context.Context, collection string, docs []json.RawMessage) error
}
