package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-municipal/internal/domain/repository"
)

func TestConstruirListado_SinFiltros(t *testing.T) {
	query, args := construirListado(repository.Filtros{})

	assert.Empty(t, args)
	assert.False(t, strings.Contains(query, "WHERE"))
	assert.True(t, strings.HasSuffix(query, "ORDER BY id ASC"))
}

func TestConstruirListado_OficinaTodasNoFiltra(t *testing.T) {
	conTodas, argsTodas := construirListado(repository.Filtros{Oficina: repository.OficinaTodas})
	sinFiltro, argsVacios := construirListado(repository.Filtros{})

	assert.Equal(t, sinFiltro, conTodas, "'Todas' debe producir la misma consulta que sin filtro")
	assert.Equal(t, argsVacios, argsTodas)
}

func TestConstruirListado_FiltroSimple(t *testing.T) {
	query, args := construirListado(repository.Filtros{Oficina: "Tesorería"})

	assert.Contains(t, query, "WHERE oficina = $1")
	require.Len(t, args, 1)
	assert.Equal(t, "Tesorería", args[0])
}

func TestConstruirListado_OrdenDePlaceholders(t *testing.T) {
	// Sin oficina: tipo debe ocupar $1, estado $2. Los índices se recalculan
	// según los filtros presentes, nunca quedan huecos.
	query, args := construirListado(repository.Filtros{Tipo: "PC", Estado: "BUENO"})

	assert.Contains(t, query, "tipo = $1")
	assert.Contains(t, query, "AND estado = $2")
	assert.NotContains(t, query, "$3")
	require.Len(t, args, 2)
	assert.Equal(t, "PC", args[0])
	assert.Equal(t, "BUENO", args[1])
}

func TestConstruirListado_SearchReutilizaUnParametro(t *testing.T) {
	query, args := construirListado(repository.Filtros{Search: "intel"})

	// Las cuatro columnas comparten el mismo placeholder y un único valor ligado.
	assert.Contains(t, query,
		"(oficina ILIKE $1 OR tipo ILIKE $1 OR microprocesador ILIKE $1 OR marca ILIKE $1)")
	require.Len(t, args, 1)
	assert.Equal(t, "%intel%", args[0])
}

func TestConstruirListado_TodosLosFiltros(t *testing.T) {
	query, args := construirListado(repository.Filtros{
		Oficina: "Caja",
		Tipo:    "LAPTOP",
		Estado:  "REGULAR",
		Search:  "hp",
	})

	assert.Contains(t, query, "WHERE oficina = $1")
	assert.Contains(t, query, "AND tipo = $2")
	assert.Contains(t, query, "AND estado = $3")
	assert.Contains(t, query, "ILIKE $4")
	require.Len(t, args, 4)
	assert.Equal(t, []any{"Caja", "LAPTOP", "REGULAR", "%hp%"}, args)
}
