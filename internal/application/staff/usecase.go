// Package staff implementa la vista administrativa del personal y el cambio de rol.
package staff

import (
	"context"

	"github.com/jhoicas/attire-api/internal/application/dto"
	"github.com/jhoicas/attire-api/internal/application/session"
	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

// UseCase casos de uso de personal. Todos exigen rol admin.
type UseCase struct {
	users repository.UserRepository
	tx    repository.TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, tx repository.TxRunner) *UseCase {
	return &UseCase{users: users, tx: tx}
}

// List devuelve la plantilla sin passwords. RoleEditable es false para quien consulta y
// para el propietario.
func (uc *UseCase) List(ctx context.Context, actor *entity.Session) ([]dto.StaffMemberResponse, error) {
	if err := session.RequireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffMemberResponse, 0, len(users))
	for i := range users {
		out = append(out, toStaffMember(&users[i], actor))
	}
	return out, nil
}

// ChangeRole asigna role a la identidad userID. ErrForbidden si es quien actúa o el propietario.
func (uc *UseCase) ChangeRole(ctx context.Context, actor *entity.Session, userID, role string) (*dto.StaffMemberResponse, error) {
	if err := session.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if userID == actor.ID {
		return nil, domain.ErrForbidden
	}
	var out *dto.StaffMemberResponse
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		users, err := uc.users.List(ctx)
		if err != nil {
			return err
		}
		for i := range users {
			u := &users[i]
			if u.ID != userID {
				continue
			}
			if u.Owner {
				return domain.ErrForbidden
			}
			u.Role = role
			if err := uc.users.Upsert(ctx, u); err != nil {
				return err
			}
			m := toStaffMember(u, actor)
			out = &m
			return nil
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toStaffMember(u *entity.User, viewer *entity.Session) dto.StaffMemberResponse {
	return dto.StaffMemberResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		TotalHours:   u.TotalHours,
		Owner:        u.Owner,
		RoleEditable: !u.Owner && u.ID != viewer.ID,
	}
}
