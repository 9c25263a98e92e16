package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore colecciones documentales sobre una tabla JSONB.
type DocumentStore struct {
	pool *pgxpool.Pool
}

// NewDocumentStore construye el adaptador.
func NewDocumentStore(pool *pgxpool.Pool) *DocumentStore {
	return &DocumentStore{pool: pool}
}

// FetchAll devuelve los documentos de la colección en orden de inserción.
func (s *DocumentStore) FetchAll(ctx context.Context, collection string) ([]repository.Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, data FROM documents WHERE collection = $1 ORDER BY seq`, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()
	var out []repository.Document
	for rows.Next() {
		var d repository.Document
		if err := rows.Scan(&d.ID, &d.Data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Insert agrega un documento con id generado.
func (s *DocumentStore) Insert(ctx context.Context, collection string, data json.RawMessage) (string, error) {
	id := uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`, collection, id, data)
	if err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrConflict
		}
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	return id, nil
}

// Update fusiona fields sobre el documento existente.
func (s *DocumentStore) Update(ctx context.Context, collection, id string, fields json.RawMessage) error {
	cmd, err := s.pool.Exec(ctx,
		`UPDATE documents SET data = data || $3::jsonb, updated_at = now() WHERE collection = $1 AND id = $2`,
		collection, id, fields)
	if err != nil {
		return fmt.Errorf("update %s: %w", collection, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el documento si existe.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	return nil
}

// BatchInsert inserta docs en una sola transacción.
func (s *DocumentStore) BatchInsert(ctx context.Context, collection string, docs []json.RawMessage) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, d := range docs {
		batch.Queue(`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
			collection, uuid.New().String(), d)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("batch insert %s: %w", collection, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
