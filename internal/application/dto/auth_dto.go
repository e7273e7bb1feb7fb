package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest alta de usuario. NombreCompleto y Rol son opcionales:
// por defecto nombre = username y rol = "usuario".
type RegisterRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	NombreCompleto string `json:"nombre_completo"`
	Rol            string `json:"rol"`
}

// UsuarioResponse proyección pública de un usuario (nunca incluye el hash).
type UsuarioResponse struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	NombreCompleto string `json:"nombre_completo"`
	Rol            string `json:"rol"`
}

// LoginResponse token firmado más la proyección del usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
