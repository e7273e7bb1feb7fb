package equipos

import (
	"context"

	"github.com/jhoicas/inventario-municipal/internal/application/dto"
	"github.com/jhoicas/inventario-municipal/internal/domain"
	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
	"github.com/jhoicas/inventario-municipal/internal/domain/repository"
)

// ReportePDFGenerator puerto para la representación PDF del inventario.
type ReportePDFGenerator interface {
	GenerarReporte(ctx context.Context, equipos []entity.Equipo, stats *repository.Estadisticas) ([]byte, error)
}

// EquipoUseCase operaciones CRUD y de consulta sobre el inventario de equipos.
type EquipoUseCase struct {
	repo repository.EquipoRepository
	pdf  ReportePDFGenerator
}

// NewEquipoUseCase construye el caso de uso de equipos.
func NewEquipoUseCase(repo repository.EquipoRepository, pdf ReportePDFGenerator) *EquipoUseCase {
	return &EquipoUseCase{repo: repo, pdf: pdf}
}

// List devuelve los equipos que pasan los filtros, en orden de inserción (id ASC),
// junto con el total de filas devueltas.
func (uc *EquipoUseCase) List(ctx context.Context, f repository.Filtros) ([]dto.EquipoResponse, int, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return dto.ToEquipoResponses(list), len(list), nil
}

// Get devuelve un equipo por id o domain.ErrNotFound.
func (uc *EquipoUseCase) Get(ctx context.Context, id int) (*dto.EquipoResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToEquipoResponse(e)
	return &resp, nil
}

// Create valida los campos obligatorios, aplica los valores por defecto y persiste.
// No escribe nada si la validación falla.
func (uc *EquipoUseCase) Create(ctx context.Context, in dto.CreateEquipoRequest) (*dto.EquipoResponse, error) {
	if in.Numero == "" || in.Oficina == "" || in.Tipo == "" {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Equipo{
		Numero:           in.Numero,
		Oficina:          in.Oficina,
		Tipo:             in.Tipo,
		Microprocesador:  in.Microprocesador,
		SistemaOperativo: in.SistemaOperativo,
		Marca:            in.Marca,
		MemoriaRAM:       in.MemoriaRAM,
		DiscoDuro:        in.DiscoDuro,
		Estado:           in.Estado,
		Monitor:          in.Monitor,
		Sede:             in.Sede,
		Escaner:          in.Escaner,
		Impresoras:       in.Impresoras,
		IP:               in.IP,
	}
	if e.Estado == "" {
		e.Estado = entity.EstadoBueno
	}
	if e.Sede == "" {
		e.Sede = entity.SedePrincipal
	}
	if e.Escaner == "" {
		e.Escaner = entity.EscanerNo
	}
	created, err := uc.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	resp := dto.ToEquipoResponse(created)
	return &resp, nil
}

// Update aplica una actualización parcial: las claves omitidas conservan el valor
// almacenado, una cadena vacía explícita lo sobrescribe. updated_at se refresca
// siempre, cambie o no algún campo.
func (uc *EquipoUseCase) Update(ctx context.Context, id int, in dto.UpdateEquipoRequest) (*dto.EquipoResponse, error) {
	campos := repository.EquipoUpdate{
		Numero:           in.Numero,
		Oficina:          in.Oficina,
		Tipo:             in.Tipo,
		Microprocesador:  in.Microprocesador,
		SistemaOperativo: in.SistemaOperativo,
		Marca:            in.Marca,
		MemoriaRAM:       in.MemoriaRAM,
		DiscoDuro:        in.DiscoDuro,
		Estado:           in.Estado,
		Monitor:          in.Monitor,
		Sede:             in.Sede,
		Escaner:          in.Escaner,
		Impresoras:       in.Impresoras,
		IP:               in.IP,
	}
	updated, err := uc.repo.Update(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	resp := dto.ToEquipoResponse(updated)
	return &resp, nil
}

// Delete elimina el equipo definitivamente o devuelve domain.ErrNotFound.
func (uc *EquipoUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

// Estadisticas devuelve los conteos agregados por tipo y estado.
func (uc *EquipoUseCase) Estadisticas(ctx context.Context) (*repository.Estadisticas, error) {
	return uc.repo.Estadisticas(ctx)
}

// Oficinas devuelve las oficinas distintas presentes en el inventario.
func (uc *EquipoUseCase) Oficinas(ctx context.Context) ([]string, error) {
	return uc.repo.Oficinas(ctx)
}

// SiguienteNumero devuelve el siguiente número de inventario libre.
func (uc *EquipoUseCase) SiguienteNumero(ctx context.Context) (string, error) {
	return uc.repo.SiguienteNumero(ctx)
}

// Reporte genera el PDF del inventario aplicando los mismos filtros del listado.
func (uc *EquipoUseCase) Reporte(ctx context.Context, f repository.Filtros) ([]byte, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	stats, err := uc.repo.Estadisticas(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerarReporte(ctx, list, stats)
}
