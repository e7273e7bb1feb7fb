package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-municipal/internal/application/dto"
	"github.com/jhoicas/inventario-municipal/pkg/logger"
)

// RequestLogger registra cada petición con un request ID propio, método, ruta,
// estado y latencia. El ID también sale en la cabecera X-Request-ID.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := uuid.NewString()
		c.Set("X-Request-ID", reqID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// NewErrorHandler traduce cualquier error no manejado al sobre JSON con 500.
// El detalle del error solo se expone en modo desarrollo.
func NewErrorHandler(dev bool, log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		log.Error().Err(err).Str("path", c.Path()).Int("status", code).Msg("error no manejado")

		msg := "Error interno del servidor"
		if dev {
			msg = err.Error()
		}
		return c.Status(code).JSON(dto.Fail(msg))
	}
}
