package dto

// StaffMemberResponse fila de la vista de personal (sin password).
type StaffMemberResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	TotalHours   float64 `json:"total_hours"`
	Owner        bool    `json:"owner"`
	RoleEditable bool    `json:"role_editable"`
}

// ChangeRoleRequest entrada para cambiar el rol de una identidad.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin sales"`
}
