package repository

import (
	"context"

	"github.com/jhoicas/attire-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para la plantilla de personal (DIP).
type UserRepository interface {
	// List devuelve la plantilla reconciliada (semilla + registros guardados).
	List(ctx context.Context) ([]entity.User, error)
	// Upsert inserta o reemplaza la identidad en la plantilla guardada.
	Upsert(ctx context.Context, user *entity.User) error
}

// SessionRepository persiste la identidad activa. Hay como máximo una por almacén.
type SessionRepository interface {
	// Get devuelve nil si no hay sesión.
	Get(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Clear(ctx context.Context) error
}
