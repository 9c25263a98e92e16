package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrCategoryExists     = errors.New("la categoría ya existe")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyClockedIn   = errors.New("ya existe un turno abierto")
	ErrNoOpenShift        = errors.New("no hay un turno abierto")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)

// IsConflict indica si err pertenece a la familia de conflictos (email o categoría duplicados).
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrCategoryExists)
}
