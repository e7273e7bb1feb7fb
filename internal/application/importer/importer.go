package importer

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
	"github.com/jhoicas/inventario-municipal/internal/domain/repository"
	"github.com/jhoicas/inventario-municipal/pkg/logger"
)

// Columnas esperadas de la hoja de inventario.
const (
	colNumero = iota
	colOficina
	colTipo
	colMicroprocesador
	colSistemaOperativo
	colMarca
	colMemoriaRAM
	colDiscoDuro
	colEstado
	colMonitor
	_ // SEDE (se fuerza PRINCIPAL)
	_ // ESCANER (se fuerza NO)
	_ // IMPRESORAS (se deja vacío)
	colIP
)

// Resumen resultado de una corrida de importación.
type Resumen struct {
	Insertados int
	Errores    int
	Omitidas   int // filas sin número o sin oficina; no cuentan ni como éxito ni como fallo
}

// Importar vacía la tabla de equipos y la repuebla desde las filas de la hoja.
// Corrida destructiva y NO transaccional: un fallo a mitad deja la tabla
// parcialmente repoblada, aceptable para esta herramienta offline. Los fallos
// por fila se registran y cuentan sin abortar el resto.
func Importar(ctx context.Context, repo repository.EquipoRepository, filas [][]string, log *logger.Logger) (*Resumen, error) {
	log.Info().Int("filas", len(filas)).Msg("limpiando equipos existentes")
	if err := repo.DeleteAll(ctx); err != nil {
		return nil, err
	}

	res := &Resumen{}
	// La fila 0 es el encabezado.
	for i := 1; i < len(filas); i++ {
		fila := filas[i]

		numero := celda(fila, colNumero)
		oficina := celda(fila, colOficina)
		if numero == "" || oficina == "" || strings.EqualFold(numero, "n°") {
			res.Omitidas++
			continue
		}

		tipo := celda(fila, colTipo)
		if tipo == "" {
			tipo = entity.TipoPC
		}
		estado := celda(fila, colEstado)
		if estado == "" {
			estado = entity.EstadoBueno
		}

		e := &entity.Equipo{
			Numero:           numero,
			Oficina:          NormalizarOficina(oficina),
			Tipo:             NormalizarTipo(tipo),
			Microprocesador:  celda(fila, colMicroprocesador),
			SistemaOperativo: celda(fila, colSistemaOperativo),
			Marca:            celda(fila, colMarca),
			MemoriaRAM:       NormalizarRAM(celda(fila, colMemoriaRAM)),
			DiscoDuro:        celda(fila, colDiscoDuro),
			Estado:           NormalizarEstado(estado),
			Monitor:          celda(fila, colMonitor),
			Sede:             entity.SedePrincipal,
			Escaner:          entity.EscanerNo,
			Impresoras:       "",
			IP:               celda(fila, colIP),
		}

		if _, err := repo.Create(ctx, e); err != nil {
			res.Errores++
			log.Warn().Err(err).Int("fila", i+1).Msg("fila no importada")
			continue
		}
		res.Insertados++
		if res.Insertados%20 == 0 {
			log.Info().Int("insertados", res.Insertados).Msg("importando equipos")
		}
	}
	return res, nil
}

// celda devuelve el valor recortado de la columna i, o "" si la fila es corta.
func celda(fila []string, i int) string {
	if i >= len(fila) {
		return ""
	}
	return strings.TrimSpace(fila[i])
}
