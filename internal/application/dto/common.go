package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"` // destino sugerido (p.ej. /login cuando falta sesión)
}

// MessageResponse respuesta simple con un mensaje para el usuario.
type MessageResponse struct {
	Message string `json:"message"`
}
