package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin   = "admin"
	RolUsuario = "usuario"
)

// Usuario representa una cuenta del sistema.
type Usuario struct {
	ID             int
	Username       string
	Password       string // bcrypt hash, nunca plano después de persistir
	NombreCompleto string
	Rol            string // admin, usuario
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
