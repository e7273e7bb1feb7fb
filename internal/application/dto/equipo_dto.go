package dto

import (
	"time"

	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
)

// CreateEquipoRequest entrada para crear un equipo. Numero, Oficina y Tipo son
// obligatorios; el resto toma cadena vacía o el valor por defecto documentado.
type CreateEquipoRequest struct {
	Numero           string `json:"numero"`
	Oficina          string `json:"oficina"`
	Tipo             string `json:"tipo"`
	Microprocesador  string `json:"microprocesador"`
	SistemaOperativo string `json:"sistema_operativo"`
	Marca            string `json:"marca"`
	MemoriaRAM       string `json:"memoria_ram"`
	DiscoDuro        string `json:"disco_duro"`
	Estado           string `json:"estado"`
	Monitor          string `json:"monitor"`
	Sede             string `json:"sede"`
	Escaner          string `json:"escaner"`
	Impresoras       string `json:"impresoras"`
	IP               string `json:"ip"`
}

// UpdateEquipoRequest actualización parcial: una clave omitida (nil) conserva el
// valor almacenado; una cadena vacía explícita lo limpia.
type UpdateEquipoRequest struct {
	Numero           *string `json:"numero"`
	Oficina          *string `json:"oficina"`
	Tipo             *string `json:"tipo"`
	Microprocesador  *string `json:"microprocesador"`
	SistemaOperativo *string `json:"sistema_operativo"`
	Marca            *string `json:"marca"`
	MemoriaRAM       *string `json:"memoria_ram"`
	DiscoDuro        *string `json:"disco_duro"`
	Estado           *string `json:"estado"`
	Monitor          *string `json:"monitor"`
	Sede             *string `json:"sede"`
	Escaner          *string `json:"escaner"`
	Impresoras       *string `json:"impresoras"`
	IP               *string `json:"ip"`
}

// EquipoResponse salida de un equipo.
type EquipoResponse struct {
	ID               int       `json:"id"`
	Numero           string    `json:"numero"`
	Oficina          string    `json:"oficina"`
	Tipo             string    `json:"tipo"`
	Microprocesador  string    `json:"microprocesador"`
	SistemaOperativo string    `json:"sistema_operativo"`
	Marca            string    `json:"marca"`
	MemoriaRAM       string    `json:"memoria_ram"`
	DiscoDuro        string    `json:"disco_duro"`
	Estado           string    `json:"estado"`
	Monitor          string    `json:"monitor"`
	Sede             string    `json:"sede"`
	Escaner          string    `json:"escaner"`
	Impresoras       string    `json:"impresoras"`
	IP               string    `json:"ip"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SiguienteNumeroResponse siguiente número de inventario libre.
type SiguienteNumeroResponse struct {
	Numero string `json:"numero"`
}

// ToEquipoResponse convierte la entidad a su proyección JSON.
func ToEquipoResponse(e *entity.Equipo) EquipoResponse {
	return EquipoResponse{
		ID:               e.ID,
		Numero:           e.Numero,
		Oficina:          e.Oficina,
		Tipo:             e.Tipo,
		Microprocesador:  e.Microprocesador,
		SistemaOperativo: e.SistemaOperativo,
		Marca:            e.Marca,
		MemoriaRAM:       e.MemoriaRAM,
		DiscoDuro:        e.DiscoDuro,
		Estado:           e.Estado,
		Monitor:          e.Monitor,
		Sede:             e.Sede,
		Escaner:          e.Escaner,
		Impresoras:       e.Impresoras,
		IP:               e.IP,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// ToEquipoResponses convierte un slice de entidades.
func ToEquipoResponses(list []entity.Equipo) []EquipoResponse {
	out := make([]EquipoResponse, 0, len(list))
	for i := range list {
		out = append(out, ToEquipoResponse(&list[i]))
	}
	return out
}
