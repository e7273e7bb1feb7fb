package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-municipal/internal/application/auth"
	"github.com/jhoicas/inventario-municipal/internal/application/dto"
	"github.com/jhoicas/inventario-municipal/internal/domain"
	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
	pkgjwt "github.com/jhoicas/inventario-municipal/pkg/jwt"
)

// repoUsuariosFalso repositorio de usuarios en memoria indexado por username.
type repoUsuariosFalso struct {
	porUsername map[string]*entity.Usuario
	siguienteID int
}

func nuevoRepoUsuarios(usuarios ...*entity.Usuario) *repoUsuariosFalso {
	r := &repoUsuariosFalso{porUsername: map[string]*entity.Usuario{}, siguienteID: 1}
	for _, u := range usuarios {
		u.ID = r.siguienteID
		r.siguienteID++
		r.porUsername[u.Username] = u
	}
	return r
}

func (r *repoUsuariosFalso) Create(ctx context.Context, u *entity.Usuario) error {
	if _, ok := r.porUsername[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	u.ID = r.siguienteID
	r.siguienteID++
	r.porUsername[u.Username] = u
	return nil
}

func (r *repoUsuariosFalso) GetByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	return r.porUsername[username], nil
}

func usuarioConPassword(t *testing.T, username, password, rol string, activo bool) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Usuario{
		Username:       username,
		Password:       string(hash),
		NombreCompleto: "Usuario de Prueba",
		Rol:            rol,
		Activo:         activo,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

var cfgJWT = auth.JWTConfig{Secret: "secreto-tests", ExpHours: 24, Issuer: "inventario-test"}

func TestLogin_Exitoso(t *testing.T) {
	repo := nuevoRepoUsuarios(usuarioConPassword(t, "admin", "admin123", entity.RolAdmin, true))
	uc := auth.NewAuthUseCase(repo, cfgJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, entity.RolAdmin, out.User.Rol)

	// El token emitido debe llevar los claims del usuario.
	claims, err := pkgjwt.Parse(cfgJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, entity.RolAdmin, claims.Rol)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := nuevoRepoUsuarios(usuarioConPassword(t, "admin", "admin123", entity.RolAdmin, true))
	uc := auth.NewAuthUseCase(repo, cfgJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(nuevoRepoUsuarios(), cfgJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	// Mismo error que password incorrecto: no se revela qué cuentas existen.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioDesactivado(t *testing.T) {
	repo := nuevoRepoUsuarios(usuarioConPassword(t, "baja", "clave", entity.RolUsuario, false))
	uc := auth.NewAuthUseCase(repo, cfgJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "baja", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrUserDisabled)
}

func TestRegister_Exitoso(t *testing.T) {
	repo := nuevoRepoUsuarios()
	uc := auth.NewAuthUseCase(repo, cfgJWT)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username:       "jperez",
		Password:       "clave123",
		NombreCompleto: "Juan Pérez",
		Rol:            entity.RolAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "jperez", out.Username)
	assert.Equal(t, "Juan Pérez", out.NombreCompleto)
	assert.Equal(t, entity.RolAdmin, out.Rol)

	guardado := repo.porUsername["jperez"]
	require.NotNil(t, guardado)
	assert.True(t, guardado.Activo)
	assert.NotEqual(t, "clave123", guardado.Password, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.Password), []byte("clave123")))
}

func TestRegister_Defaults(t *testing.T) {
	repo := nuevoRepoUsuarios()
	uc := auth.NewAuthUseCase(repo, cfgJWT)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "mlopez",
		Password: "clave123",
	})
	require.NoError(t, err)
	assert.Equal(t, "mlopez", out.NombreCompleto, "sin nombre se usa el username")
	assert.Equal(t, entity.RolUsuario, out.Rol, "el rol por defecto es usuario")
}

func TestRegister_UsernameOcupado(t *testing.T) {
	repo := nuevoRepoUsuarios(usuarioConPassword(t, "admin", "admin123", entity.RolAdmin, true))
	uc := auth.NewAuthUseCase(repo, cfgJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}
