package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
	ErrUserDisabled       = errors.New("usuario desactivado")
	ErrUsernameTaken      = errors.New("el usuario ya existe")
	ErrForbidden          = errors.New("acceso denegado")
)
