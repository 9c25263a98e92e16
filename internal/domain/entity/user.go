package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// User representa una identidad del personal de la tienda.
// Password se guarda en claro: el sistema es un prototipo de un solo puesto.
type User struct {
	ID         string
	Name       string
	Email      string // clave de login, única
	Password   string
	Role       string  // admin, sales
	TotalHours float64 // horas acumuladas por fichajes cerrados
	Owner      bool    // propietario: su rol no puede revocarse
}

// ValidRole indica si role es uno de los roles soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSales
}

// IsAdmin indica si la identidad tiene rol administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session devuelve la proyección pública de la identidad (sin password).
func (u *User) Session() Session {
	return Session{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
