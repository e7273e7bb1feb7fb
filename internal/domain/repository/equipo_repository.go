package repository

import (
	"context"

	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
)

// OficinaTodas es el valor centinela del filtro de oficina: significa "sin filtro",
// nunca se compara contra la columna.
const OficinaTodas = "Todas"

// Filtros parámetros opcionales del listado de equipos. Cadena vacía = sin filtro.
type Filtros struct {
	Oficina string
	Tipo    string
	Estado  string
	Search  string // coincidencia parcial, sin distinguir mayúsculas
}

// EquipoUpdate campos de actualización parcial. nil = conservar el valor actual;
// puntero a cadena vacía = vaciar el campo. La omisión no equivale a limpiar.
type EquipoUpdate struct {
	Numero           *string
	Oficina          *string
	Tipo             *string
	Microprocesador  *string
	SistemaOperativo *string
	Marca            *string
	MemoriaRAM       *string
	DiscoDuro        *string
	Estado           *string
	Monitor          *string
	Sede             *string
	Escaner          *string
	Impresoras       *string
	IP               *string
}

// Estadisticas conteos agregados del inventario. Los sub-conteos usan coincidencia
// parcial sobre el texto de tipo/estado para tolerar variantes heredadas.
type Estadisticas struct {
	Total    int `json:"total"`
	PC       int `json:"pc"`
	Laptop   int `json:"laptop"`
	Servidor int `json:"servidor"`
	Bueno    int `json:"bueno"`
	Regular  int `json:"regular"`
	Malo     int `json:"malo"`
}

// EquipoRepository puerto de persistencia para equipos.
type EquipoRepository interface {
	List(ctx context.Context, f Filtros) ([]entity.Equipo, error)
	GetByID(ctx context.Context, id int) (*entity.Equipo, error)
	// Create persiste el equipo y devuelve la fila completa con id y timestamps generados.
	Create(ctx context.Context, e *entity.Equipo) (*entity.Equipo, error)
	// Update aplica una actualización parcial y devuelve la fila resultante.
	// Retorna domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, id int, campos EquipoUpdate) (*entity.Equipo, error)
	// Delete elimina la fila. Retorna domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id int) error
	Estadisticas(ctx context.Context) (*Estadisticas, error)
	// Oficinas devuelve las oficinas distintas presentes, en orden alfabético.
	Oficinas(ctx context.Context) ([]string, error)
	// SiguienteNumero devuelve max+1 sobre los números de inventario puramente
	// numéricos, o "1" si no hay ninguno.
	SiguienteNumero(ctx context.Context) (string, error)
	// DeleteAll vacía la tabla (usado por el importador masivo).
	DeleteAll(ctx context.Context) error
}
