package localstore

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo identidad activa bajo KeySession.
type SessionRepo struct {
	store *Store
}

// NewSessionRepository construye el repositorio de sesión.
func NewSessionRepository(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Get devuelve la sesión guardada. Un blob ilegible cuenta como ausencia de sesión.
func (r *SessionRepo) Get(ctx context.Context) (*entity.Session, error) {
	var rec sessionRecord
	ok, err := r.store.GetJSON(ctx, KeySession, &rec)
	if err == nil && ok {
		err = rec.validate()
	}
	if err != nil {
		r.store.log.Warn().Err(err).Str("key", KeySession).Msg("sesión ilegible, se trata como ausente")
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return &entity.Session{ID: rec.ID, Name: rec.Name, Email: rec.Email, Role: rec.Role}, nil
}

// Save persiste la proyección de la sesión.
func (r *SessionRepo) Save(ctx context.Context, s *entity.Session) error {
	return r.store.SetJSON(ctx, KeySession, sessionRecord{ID: s.ID, Name: s.Name, Email: s.Email, Role: s.Role})
}

// Clear elimina la sesión.
func (r *SessionRepo) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, KeySession)
}
