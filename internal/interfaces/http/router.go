package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-municipal/internal/application/auth"
	"github.com/jhoicas/inventario-municipal/internal/application/dto"
	"github.com/jhoicas/inventario-municipal/internal/application/equipos"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	EquipoUC  *equipos.EquipoUseCase
	JWTSecret string
	AppName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Índice: mapa de endpoints para exploración manual.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.OK("API del Sistema de Inventario Municipal", fiber.Map{
			"health": "GET /api/health",
			"auth": fiber.Map{
				"login":    "POST /api/auth/login",
				"register": "POST /api/auth/register",
				"verify":   "GET /api/auth/verify",
			},
			"equipos": fiber.Map{
				"list":         "GET /api/equipos",
				"estadisticas": "GET /api/equipos/estadisticas",
				"oficinas":     "GET /api/equipos/oficinas",
				"siguiente":    "GET /api/equipos/siguiente-numero",
				"reporte":      "GET /api/equipos/reporte",
				"get":          "GET /api/equipos/:id",
				"create":       "POST /api/equipos",
				"update":       "PUT /api/equipos/:id",
				"delete":       "DELETE /api/equipos/:id",
			},
		}))
	})

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "API del Sistema de Inventario Municipal funcionando correctamente",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Auth (público salvo verify)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/verify", AuthMiddleware(deps.JWTSecret), authHandler.Verify)

	// Equipos: lecturas públicas, escrituras solo admin autenticado.
	// Las rutas fijas van antes que /:id para que no las capture el parámetro.
	eq := api.Group("/equipos")
	equipoHandler := NewEquipoHandler(deps.EquipoUC)
	eq.Get("/", equipoHandler.List)
	eq.Get("/estadisticas", equipoHandler.Estadisticas)
	eq.Get("/oficinas", equipoHandler.Oficinas)
	eq.Get("/siguiente-numero", equipoHandler.SiguienteNumero)
	eq.Get("/reporte", AuthMiddleware(deps.JWTSecret), equipoHandler.Reporte)
	eq.Get("/:id", equipoHandler.GetByID)
	eq.Post("/", AuthMiddleware(deps.JWTSecret), AdminMiddleware(), equipoHandler.Create)
	eq.Put("/:id", AuthMiddleware(deps.JWTSecret), AdminMiddleware(), equipoHandler.Update)
	eq.Delete("/:id", AuthMiddleware(deps.JWTSecret), AdminMiddleware(), equipoHandler.Delete)

	// Rutas desconocidas: 404 con el sobre estándar.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Ruta no encontrada"))
	})
}
