package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-municipal/internal/application/auth"
	"github.com/jhoicas/inventario-municipal/internal/application/dto"
	"github.com/jhoicas/inventario-municipal/internal/domain"
)

// AuthHandler maneja login, registro y verificación de token.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.Respuesta
// @Failure      401   {object}  dto.Respuesta
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido"))
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Usuario y contraseña son requeridos"))
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Credenciales incorrectas"))
		case errors.Is(err, domain.ErrUserDisabled):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Usuario desactivado"))
		default:
			return err
		}
	}
	return c.JSON(dto.OK("Login exitoso", out))
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password, nombre_completo?, rol?"
// @Success      201   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido"))
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Usuario y contraseña son requeridos"))
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			// El frontend espera 400 en este caso, no 409.
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("El usuario ya existe"))
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Usuario creado exitosamente", out))
}

// Verify godoc
// @Summary      Verificar token
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Failure      401  {object}  dto.Respuesta
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token inválido"))
	}
	user := dto.UsuarioResponse{
		ID:             claims.UserID,
		Username:       claims.Username,
		NombreCompleto: claims.NombreCompleto,
		Rol:            claims.Rol,
	}
	return c.JSON(dto.OK("Token válido", fiber.Map{"user": user}))
}
