package entity

// Session es la identidad activa: proyección de User sin credenciales.
type Session struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// IsAdmin expone la capacidad "es administrador" usada para las acciones de escritura.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
