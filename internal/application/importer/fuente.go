package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// LeerArchivo carga la hoja de inventario como matriz de celdas. Soporta el
// libro Excel original (.xlsx, primera hoja) y exportes .csv. Los exportes
// heredados suelen venir en ISO-8859-1; latin1 activa esa decodificación.
func LeerArchivo(ruta string, latin1 bool) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(ruta)) {
	case ".xlsx":
		return leerExcel(ruta)
	case ".csv":
		return leerCSV(ruta, latin1)
	default:
		return nil, fmt.Errorf("formato no soportado: %s (se espera .xlsx o .csv)", ruta)
	}
}

func leerExcel(ruta string) ([][]string, error) {
	f, err := excelize.OpenFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("abrir excel: %w", err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	filas, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", hojas[0], err)
	}
	return filas, nil
}

func leerCSV(ruta string, latin1 bool) ([][]string, error) {
	f, err := os.Open(ruta)
	if err != nil {
		return nil, fmt.Errorf("abrir csv: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // las filas de la hoja tienen largos desiguales
	filas, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	return filas, nil
}
