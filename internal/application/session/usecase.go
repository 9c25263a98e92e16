// Package session implementa la puerta de sesión y rol: login, alta, logout y la
// comprobación de identidad que precede a cada acción protegida.
package session

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/attire-api/internal/application/dto"
	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
	"github.com/jhoicas/attire-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de sesión.
type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	tx       repository.TxRunner
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, sessions repository.SessionRepository, tx repository.TxRunner, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, sessions: sessions, tx: tx, jwtCfg: jwtCfg}
}

// Current devuelve la sesión persistida o nil si no hay.
func (uc *UseCase) Current(ctx context.Context) (*entity.Session, error) {
	return uc.sessions.Get(ctx)
}

// Require devuelve la sesión activa o ErrUnauthorized.
func (uc *UseCase) Require(ctx context.Context) (*entity.Session, error) {
	s, err := uc.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

// Authenticate valida el token y exige que la sesión persistida sea la misma identidad.
// Un login posterior de otra identidad invalida los tokens anteriores.
func (uc *UseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	s, err := uc.Require(ctx)
	if err != nil {
		return nil, err
	}
	if s.ID != claims.UserID {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

// Login busca la identidad con email y password exactos en la plantilla reconciliada,
// persiste la sesión y devuelve el token.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out *dto.LoginResponse
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		users, err := uc.users.List(ctx)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].Email == in.Email && users[i].Password == in.Password {
				out, err = uc.open(ctx, &users[i])
				return err
			}
		}
		return domain.ErrInvalidCredentials
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Register da de alta un vendedor y abre su sesión. ErrEmailAlreadyExists si el email
// ya figura en la plantilla; en ese caso no se escribe nada.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.LoginResponse
	err := uc.tx.Run(ctx, func(ctx context.Context) error {
		users, err := uc.users.List(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Email == email {
				return domain.ErrEmailAlreadyExists
			}
		}
		user := &entity.User{
			ID:       uuid.New().String(),
			Name:     name,
			Email:    email,
			Password: in.Password,
			Role:     entity.RoleSales,
		}
		if err := uc.users.Upsert(ctx, user); err != nil {
			return err
		}
		out, err = uc.open(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Logout elimina la sesión persistida.
func (uc *UseCase) Logout(ctx context.Context) error {
	return uc.tx.Run(ctx, func(ctx context.Context) error {
		return uc.sessions.Clear(ctx)
	})
}

func (uc *UseCase) open(ctx context.Context, u *entity.User) (*dto.LoginResponse, error) {
	s := u.Session()
	token, err := jwt.Generate(uc.jwtCfg.Secret, s.ID, s.Email, s.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(ctx, &s); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: ToSessionResponse(&s)}, nil
}

// RequireAdmin exige una sesión con rol admin: ErrUnauthorized sin sesión, ErrForbidden sin rol.
func RequireAdmin(actor *entity.Session) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// ToSessionResponse proyecta la sesión al DTO.
func ToSessionResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{ID: s.ID, Name: s.Name, Email: s.Email, Role: s.Role, IsAdmin: s.IsAdmin()}
}
