package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-municipal/internal/application/dto"
	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
	"github.com/jhoicas/inventario-municipal/pkg/jwt"
)

// localClaims clave de c.Locals donde el middleware deja los claims decodificados.
const localClaims = "claims"

// AuthMiddleware exige un Bearer Token JWT válido. Todos los fallos responden 401,
// pero con mensajes distintos (faltante / malformado / expirado / inválido) para
// diagnóstico del cliente. Con token válido, los claims quedan en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token de autenticación no proporcionado"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Formato de token inválido"))
		}
		claims, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token expirado"))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token inválido"))
		}
		c.Locals(localClaims, claims)
		return c.Next()
	}
}

// AdminMiddleware exige el rol admin sobre los claims ya cargados por AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil || claims.Rol != entity.RolAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Acceso denegado. Se requieren permisos de administrador"))
		}
		return c.Next()
	}
}

// GetClaims devuelve los claims del contexto (después del middleware de auth), o nil.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	v := c.Locals(localClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}
