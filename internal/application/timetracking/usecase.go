// Package timetracking implementa el libro de fichajes: entrada, salida y horas acumuladas.
package timetracking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/attire-api/internal/application/dto"
	"github.com/jhoicas/attire-api/internal/application/session"
	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

// UseCase casos de uso del libro de fichajes.
type UseCase struct {
	entries repository.TimeEntryRepository
	users   repository.UserRepository
	tx      repository.TxRunner
	now     func() time.Time
	printer *message.Printer
}

// NewUseCase construye el caso de uso con el reloj del sistema.
func NewUseCase(entries repository.TimeEntryRepository, users repository.UserRepository, tx repository.TxRunner) *UseCase {
	return &UseCase{entries: entries, users: users, tx: tx, now: time.Now, printer: message.NewPrinter(language.English)}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// ClockIn abre un turno para userID. ErrAlreadyClockedIn si ya tiene uno abierto.
func (uc *UseCase) ClockIn(ctx context.Context, userID string) (*dto.TimeEntryResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.TimeEntryResponse
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		entries, err := uc.entries.List(ctx)
		if err != nil {
			return err
		}
		if openIndex(entries, userID) >= 0 {
			return domain.ErrAlreadyClockedIn
		}
		e := entity.TimeEntry{ID: uuid.New().String(), UserID: userID, ClockIn: uc.now()}
		if err := uc.entries.Save(ctx, append(entries, e)); err != nil {
			return err
		}
		r := toEntryResponse(e)
		out = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClockOut cierra el turno abierto más reciente de userID y suma la duración a sus horas.
// Si no se puede guardar la identidad, el libro vuelve a su estado anterior.
func (uc *UseCase) ClockOut(ctx context.Context, userID string) (*dto.ClockOutResponse, error) {
	var out *dto.ClockOutResponse
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		entries, err := uc.entries.List(ctx)
		if err != nil {
			return err
		}
		idx := openIndex(entries, userID)
		if idx < 0 {
			return domain.ErrNoOpenShift
		}
		prev := make([]entity.TimeEntry, len(entries))
		copy(prev, entries)

		now := uc.now()
		entries[idx].ClockOut = &now
		hours := entries[idx].DurationHours()
		if err := uc.entries.Save(ctx, entries); err != nil {
			return err
		}

		total, err := uc.addHours(ctx, userID, hours)
		if err != nil {
			if rerr := uc.entries.Save(ctx, prev); rerr != nil {
				return fmt.Errorf("%w (restaurar fichajes: %v)", err, rerr)
			}
			return err
		}
		out = &dto.ClockOutResponse{
			Entry:         toEntryResponse(entries[idx]),
			DurationHours: hours,
			TotalHours:    total,
			Message:       uc.printer.Sprintf("You worked %.2f hours.", hours),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ResetHours pone a cero las horas acumuladas de userID. Solo admin; los fichajes no se tocan.
func (uc *UseCase) ResetHours(ctx context.Context, actor *entity.Session, userID string) error {
	if err := session.RequireAdmin(actor); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(ctx context.Context) error {
		u, err := uc.findUser(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		u.TotalHours = 0
		return uc.users.Upsert(ctx, u)
	})
}

// Status devuelve el turno abierto de userID (si lo hay) y sus horas acumuladas.
func (uc *UseCase) Status(ctx context.Context, userID string) (*dto.TimeStatusResponse, error) {
	entries, err := uc.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.TimeStatusResponse{}
	if idx := openIndex(entries, userID); idx >= 0 {
		r := toEntryResponse(entries[idx])
		out.ClockedIn = true
		out.OpenEntry = &r
	}
	u, err := uc.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u != nil {
		out.TotalHours = u.TotalHours
	}
	return out, nil
}

// Entries devuelve los fichajes de userID, más recientes primero.
func (uc *UseCase) Entries(ctx context.Context, userID string) ([]dto.TimeEntryResponse, error) {
	entries, err := uc.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimeEntryResponse, 0)
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].UserID == userID {
			out = append(out, toEntryResponse(entries[i]))
		}
	}
	return out, nil
}

// addHours suma hours a la identidad y devuelve el nuevo total. Una identidad que ya no
// figura en la plantilla no acumula.
func (uc *UseCase) addHours(ctx context.Context, userID string, hours float64) (float64, error) {
	u, err := uc.findUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if u == nil {
		return 0, nil
	}
	u.TotalHours += hours
	if err := uc.users.Upsert(ctx, u); err != nil {
		return 0, err
	}
	return u.TotalHours, nil
}

func (uc *UseCase) findUser(ctx context.Context, userID string) (*entity.User, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, nil
}

// openIndex devuelve el índice del turno abierto más reciente de userID, o -1.
func openIndex(entries []entity.TimeEntry, userID string) int {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].UserID == userID && entries[i].IsOpen() {
			return i
		}
	}
	return -1
}

func toEntryResponse(e entity.TimeEntry) dto.TimeEntryResponse {
	return dto.TimeEntryResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		ClockIn:       e.ClockIn,
		ClockOut:      e.ClockOut,
		DurationHours: e.DurationHours(),
	}
}
