package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-municipal/internal/application/dto"
	"github.com/jhoicas/inventario-municipal/internal/application/equipos"
	"github.com/jhoicas/inventario-municipal/internal/domain"
	"github.com/jhoicas/inventario-municipal/internal/domain/repository"
)

// EquipoHandler maneja las peticiones HTTP del inventario de equipos.
type EquipoHandler struct {
	uc *equipos.EquipoUseCase
}

// NewEquipoHandler construye el handler.
func NewEquipoHandler(uc *equipos.EquipoUseCase) *EquipoHandler {
	return &EquipoHandler{uc: uc}
}

func filtrosDesdeQuery(c *fiber.Ctx) repository.Filtros {
	return repository.Filtros{
		Oficina: c.Query("oficina"),
		Tipo:    c.Query("tipo"),
		Estado:  c.Query("estado"),
		Search:  c.Query("search"),
	}
}

// List godoc
// @Summary      Listar equipos
// @Tags         equipos
// @Produce      json
// @Param        oficina  query  string  false  "Oficina exacta ('Todas' = sin filtro)"
// @Param        tipo     query  string  false  "Tipo exacto"
// @Param        estado   query  string  false  "Estado exacto"
// @Param        search   query  string  false  "Búsqueda parcial en oficina/tipo/microprocesador/marca"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/equipos [get]
func (h *EquipoHandler) List(c *fiber.Ctx) error {
	list, total, err := h.uc.List(c.UserContext(), filtrosDesdeQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKTotal("Equipos obtenidos exitosamente", list, total))
}

// Estadisticas godoc
// @Summary      Estadísticas del inventario
// @Tags         equipos
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Router       /api/equipos/estadisticas [get]
func (h *EquipoHandler) Estadisticas(c *fiber.Ctx) error {
	stats, err := h.uc.Estadisticas(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("", stats))
}

// Oficinas godoc
// @Summary      Oficinas distintas presentes en el inventario
// @Tags         equipos
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Router       /api/equipos/oficinas [get]
func (h *EquipoHandler) Oficinas(c *fiber.Ctx) error {
	oficinas, err := h.uc.Oficinas(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("", oficinas))
}

// SiguienteNumero godoc
// @Summary      Siguiente número de inventario libre
// @Tags         equipos
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Router       /api/equipos/siguiente-numero [get]
func (h *EquipoHandler) SiguienteNumero(c *fiber.Ctx) error {
	numero, err := h.uc.SiguienteNumero(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("", dto.SiguienteNumeroResponse{Numero: numero}))
}

// GetByID godoc
// @Summary      Obtener un equipo por ID
// @Tags         equipos
// @Produce      json
// @Param        id   path  int  true  "ID del equipo"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/equipos/{id} [get]
func (h *EquipoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido"))
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Equipo no encontrado"))
		}
		return err
	}
	return c.JSON(dto.OK("", out))
}

// Create godoc
// @Summary      Crear equipo
// @Tags         equipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipoRequest  true  "Datos del equipo"
// @Success      201   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/equipos [post]
func (h *EquipoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido"))
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Número, oficina y tipo son requeridos"))
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Equipo creado exitosamente", out))
}

// Update godoc
// @Summary      Actualizar equipo (parcial: clave omitida conserva, "" limpia)
// @Tags         equipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del equipo"
// @Param        body  body  dto.UpdateEquipoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/equipos/{id} [put]
func (h *EquipoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido"))
	}
	var in dto.UpdateEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo inválido"))
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Equipo no encontrado"))
		}
		return err
	}
	return c.JSON(dto.OK("Equipo actualizado exitosamente", out))
}

// Delete godoc
// @Summary      Eliminar equipo
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del equipo"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/equipos/{id} [delete]
func (h *EquipoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID inválido"))
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Equipo no encontrado"))
		}
		return err
	}
	return c.JSON(dto.OK("Equipo eliminado exitosamente", nil))
}

// Reporte godoc
// @Summary      Reporte PDF del inventario (acepta los mismos filtros del listado)
// @Tags         equipos
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/equipos/reporte [get]
func (h *EquipoHandler) Reporte(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Reporte(c.UserContext(), filtrosDesdeQuery(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventario.pdf"`)
	return c.Send(pdfBytes)
}
