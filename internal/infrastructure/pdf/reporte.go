// Package pdf genera el reporte imprimible del inventario de equipos:
// encabezado institucional, tabla de equipos y resumen de conteos.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-municipal/internal/application/equipos"
	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
	"github.com/jhoicas/inventario-municipal/internal/domain/repository"
)

var _ equipos.ReportePDFGenerator = (*ReporteGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReporteGenerator implementa equipos.ReportePDFGenerator usando Maroto v2.
type ReporteGenerator struct{}

// NewReporteGenerator construye el generador.
func NewReporteGenerator() *ReporteGenerator { return &ReporteGenerator{} }

// GenerarReporte genera el PDF del inventario y devuelve sus bytes.
func (g *ReporteGenerator) GenerarReporte(
	_ context.Context,
	lista []entity.Equipo,
	stats *repository.Estadisticas,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Inventario de Equipos Informáticos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(lista)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, e := range lista {
		m.AddRows(equipoRow(&e))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(statsRow(stats))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(total int) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Sistema de Inventario Municipal", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Equipos listados: %d", total), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(6).Add(
		col.New(1).Add(text.New("N°", header)),
		col.New(3).Add(text.New("Oficina", header)),
		col.New(1).Add(text.New("Tipo", header)),
		col.New(3).Add(text.New("Microprocesador", header)),
		col.New(2).Add(text.New("Marca", header)),
		col.New(1).Add(text.New("RAM", header)),
		col.New(1).Add(text.New("Estado", header)),
	)
}

func equipoRow(e *entity.Equipo) core.Row {
	cell := props.Text{Size: 7, Top: 1}
	return row.New(5).Add(
		col.New(1).Add(text.New(e.Numero, cell)),
		col.New(3).Add(text.New(e.Oficina, cell)),
		col.New(1).Add(text.New(e.Tipo, cell)),
		col.New(3).Add(text.New(e.Microprocesador, cell)),
		col.New(2).Add(text.New(e.Marca, cell)),
		col.New(1).Add(text.New(e.MemoriaRAM, cell)),
		col.New(1).Add(text.New(e.Estado, cell)),
	)
}

func statsRow(s *repository.Estadisticas) core.Row {
	resumen := fmt.Sprintf(
		"Total: %d  |  PC: %d  Laptop: %d  Servidor: %d  |  Bueno: %d  Regular: %d  Malo: %d",
		s.Total, s.PC, s.Laptop, s.Servidor, s.Bueno, s.Regular, s.Malo,
	)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(resumen, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}
