package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attire-api/internal/application/dto"
	"github.com/jhoicas/attire-api/internal/domain/entity"
)

// Locals keys para la sesión autenticada en Fiber.
const (
	LocalSession = "session"
	LocalUserID  = "user_id"
	LocalRole    = "role"
)

// sessionAuthenticator es el contrato mínimo que necesita el middleware.
// Lo implementa *session.UseCase.
type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}

// SessionMiddleware valida el Bearer Token contra la sesión persistida y carga la sesión
// en c.Locals. Sin sesión válida responde 401 LOGIN_REQUIRED con redirect a /login.
func SessionMiddleware(auth sessionAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return loginRequired(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>", Redirect: loginPath})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return loginRequired(c)
		}
		s, err := auth.Authenticate(c.Context(), tokenString)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalSession, s)
		c.Locals(LocalUserID, s.ID)
		c.Locals(LocalRole, s.Role)
		return c.Next()
	}
}

// RequireRole deja pasar solo a sesiones con alguno de los roles dados.
// Debe usarse DESPUÉS de SessionMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "la sesión no tiene rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permisos para esta ruta"})
	}
}

// GetSession devuelve la sesión del contexto (después de SessionMiddleware).
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}

// GetUserID devuelve el UserID del contexto.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
