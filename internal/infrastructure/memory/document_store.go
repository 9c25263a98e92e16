package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore backend documental en memoria. Update fusiona claves de primer nivel,
// como el operador || de JSONB.
type DocumentStore struct {
	mu          sync.Mutex
	collections map[string][]repository.Document
}

// NewDocumentStore construye un backend vacío.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{collections: make(map[string][]repository.Document)}
}

// FetchAll devuelve los documentos en orden de inserción.
func (s *DocumentStore) FetchAll(_ context.Context, collection string) ([]repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	out := make([]repository.Document, len(docs))
	copy(out, docs)
	return out, nil
}

// Insert agrega un documento.
func (s *DocumentStore) Insert(_ context.Context, collection string, data json.RawMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.collections[collection] = append(s.collections[collection], repository.Document{ID: id, Data: data})
	return id, nil
}

// Update fusiona fields.
func (s *DocumentStore) Update(_ context.Context, collection, id string, fields json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	for i := range docs {
		if docs[i].ID != id {
			continue
		}
		var current, patch map[string]json.RawMessage
		if err := json.Unmarshal(docs[i].Data, &current); err != nil {
			return err
		}
		if err := json.Unmarshal(fields, &patch); err != nil {
			return err
		}
		for k, v := range patch {
			current[k] = v
		}
		merged, err := json.Marshal(current)
		if err != nil {
			return err
		}
		docs[i].Data = merged
		return nil
	}
	return domain.ErrNotFound
}

// Delete elimina el documento si existe.
func (s *DocumentStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	for i := range docs {
		if docs[i].ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// BatchInsert agrega todos los documentos.
func (s *DocumentStore) BatchInsert(ctx context.Context, collection string, docs []json.RawMessage) error {
	for _, d := range docs {
		if _, err := s.Insert(ctx, collection, d); err != nil {
			return err
		}
	}
	return nil
}
