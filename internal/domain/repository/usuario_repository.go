package repository

import (
	"context"

	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para usuarios.
type UsuarioRepository interface {
	// Create persiste un usuario nuevo. Retorna domain.ErrUsernameTaken si el username ya existe.
	Create(ctx context.Context, u *entity.Usuario) error
	// GetByUsername devuelve (nil, nil) si el usuario no existe.
	GetByUsername(ctx context.Context, username string) (*entity.Usuario, error)
}
