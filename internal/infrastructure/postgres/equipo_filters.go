package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-municipal/internal/domain/repository"
)

// condicion es un par (fragmento de predicado, valor ligado). El fragmento usa el
// marcador "$?" donde va el placeholder posicional; el índice real se calcula al
// renderizar, según la posición de la condición en la lista. Así los índices nunca
// se desfasan al añadir o quitar filtros.
type condicion struct {
	frag string
	val  any
}

// construirListado arma el SELECT del listado de equipos a partir de los filtros
// opcionales. Todos los valores van siempre como parámetros ligados, nunca
// interpolados. Las condiciones se combinan con AND y el orden es estable: id ASC.
func construirListado(f repository.Filtros) (string, []any) {
	var conds []condicion

	// "Todas" es el centinela de "sin filtro de oficina", no un nombre literal.
	if f.Oficina != "" && f.Oficina != repository.OficinaTodas {
		conds = append(conds, condicion{"oficina = $?", f.Oficina})
	}
	if f.Tipo != "" {
		conds = append(conds, condicion{"tipo = $?", f.Tipo})
	}
	if f.Estado != "" {
		conds = append(conds, condicion{"estado = $?", f.Estado})
	}
	if f.Search != "" {
		// Un solo parámetro reutilizado en las cuatro columnas.
		conds = append(conds, condicion{
			"(oficina ILIKE $? OR tipo ILIKE $? OR microprocesador ILIKE $? OR marca ILIKE $?)",
			"%" + f.Search + "%",
		})
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + columnasEquipo + ` FROM equipos`)
	args := make([]any, 0, len(conds))
	for i, c := range conds {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(strings.ReplaceAll(c.frag, "$?", fmt.Sprintf("$%d", i+1)))
		args = append(args, c.val)
	}
	b.WriteString(" ORDER BY id ASC")
	return b.String(), args
}
