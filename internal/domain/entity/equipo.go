package entity

import "time"

// Tipos válidos de equipo.
const (
	TipoPC        = "PC"
	TipoLaptop    = "LAPTOP"
	TipoServidor  = "SERVIDOR"
	TipoImpresora = "IMPRESORA"
)

// Estados válidos de un equipo.
const (
	EstadoBueno   = "BUENO"
	EstadoRegular = "REGULAR"
	EstadoMalo    = "MALO"
)

// Valores por defecto al crear un equipo.
const (
	SedePrincipal = "PRINCIPAL"
	EscanerNo     = "NO"
)

// Equipo representa un equipo informático inventariado (PC, laptop, servidor o impresora)
// asignado a una oficina municipal. Numero es el número de inventario: texto numérico,
// no necesariamente único.
type Equipo struct {
	ID               int
	Numero           string
	Oficina          string
	Tipo             string // PC, LAPTOP, SERVIDOR, IMPRESORA
	Microprocesador  string
	SistemaOperativo string
	Marca            string
	MemoriaRAM       string
	DiscoDuro        string
	Estado           string // BUENO, REGULAR, MALO
	Monitor          string
	Sede             string
	Escaner          string // SI / NO
	Impresoras       string
	IP               string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
