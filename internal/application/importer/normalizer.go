// Package importer contiene la lógica del importador masivo de inventario:
// normalización determinista de los valores libres de la hoja de cálculo
// (tipo, estado, RAM, oficina) y el ciclo de carga fila a fila.
package importer

import (
	"regexp"
	"strings"

	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
)

// NormalizarTipo canonicaliza el texto libre de tipo de equipo.
// Cualquier cosa que no parezca laptop ni servidor se clasifica como PC.
func NormalizarTipo(tipo string) string {
	t := strings.ToUpper(tipo)
	switch {
	case strings.Contains(t, "LAPTOP"), strings.Contains(t, "PORTATIL"), strings.Contains(t, "LAP"):
		return entity.TipoLaptop
	case strings.Contains(t, "SERVIDOR"), strings.Contains(t, "SERVER"):
		return entity.TipoServidor
	default:
		return entity.TipoPC
	}
}

// NormalizarEstado canonicaliza el estado. Acepta las abreviaturas de una letra
// usadas en las hojas ("B", "R", "M"); el valor desconocido cae en BUENO.
func NormalizarEstado(estado string) string {
	e := strings.ToUpper(estado)
	switch {
	case strings.Contains(e, "BUEN"), e == "B":
		return entity.EstadoBueno
	case strings.Contains(e, "REG"), e == "R":
		return entity.EstadoRegular
	case strings.Contains(e, "MAL"), e == "M":
		return entity.EstadoMalo
	default:
		return entity.EstadoBueno
	}
}

var ramDigits = regexp.MustCompile(`\d+`)

// NormalizarRAM extrae el run de dígitos más a la izquierda (en "DDR4 8" es el
// "4" de DDR4) y añade " GB" si la cadena original no trae la unidad. Sin
// dígitos, la cadena pasa sin cambios.
func NormalizarRAM(ram string) string {
	if ram == "" {
		return ""
	}
	n := ramDigits.FindString(ram)
	if n != "" && !strings.Contains(strings.ToUpper(ram), "GB") {
		return n + " GB"
	}
	return ram
}

// oficinaMapeo asocia variantes de nombre de oficina con el nombre canónico.
// Es una lista ordenada, no un mapa: gana la primera clave contenida en el texto,
// y ese orden de desempate debe mantenerse estable.
var oficinaMapeo = []struct {
	patron   string
	canonico string
}{
	{"ABASTECIMIENTO", "Abastecimiento"},
	{"ALCALDIA", "Alcaldía"},
	{"ALCALDÍA", "Alcaldía"},
	{"ATM", "ATM (Área Técnica Municipal)"},
	{"AREA TECNICA", "ATM (Área Técnica Municipal)"},
	{"CAJA", "Caja"},
	{"CONTABILIDAD", "Contabilidad"},
	{"DEMUNA", "DEMUNA"},
	{"DESARROLLO URBANO", "Desarrollo Urbano"},
	{"GERENCIA", "Gerencia Municipal"},
	{"GERENCIA MUNICIPAL", "Gerencia Municipal"},
	{"IMAGEN", "Imagen Institucional"},
	{"IMAGEN INSTITUCIONAL", "Imagen Institucional"},
	{"INFORMATICA", "Informática"},
	{"INFORMÁTICA", "Informática"},
	{"AREA DE INFORMATICA", "Informática"},
	{"INFRAESTRUCTURA", "Infraestructura"},
	{"MANTENIMIENTO", "Mantenimiento de Maquinaria"},
	{"MAQUINARIA", "Mantenimiento de Maquinaria"},
	{"MESA DE PARTES", "Mesa de Partes"},
	{"MESA PARTES", "Mesa de Partes"},
	{"OBRAS", "Obras"},
	{"OBRAS PUBLICAS", "Obras"},
	{"ENLACE", "Oficina de Enlace"},
	{"PLANIFICACION", "Planificación y Presupuesto"},
	{"PRESUPUESTO", "Planificación y Presupuesto"},
	{"PROGRAMAS SOCIALES", "Programas Sociales (PVL)"},
	{"PVL", "Programas Sociales (PVL)"},
	{"VASO DE LECHE", "Programas Sociales (PVL)"},
	{"REGISTRO CIVIL", "Registro Civil"},
	{"REGISTRO", "Registro Civil"},
	{"SECRETARIA", "Secretaría General"},
	{"SECRETARIA GENERAL", "Secretaría General"},
	{"SECRETARÍA", "Secretaría General"},
	{"TESORERIA", "Tesorería"},
	{"TESORERÍA", "Tesorería"},
	{"UNIDAD FORMULADORA", "Unidad Formuladora"},
	{"FORMULADORA", "Unidad Formuladora"},
	{"CATASTRO", "Desarrollo Urbano"},
	{"RECURSOS HUMANOS", "Abastecimiento"},
	{"RENTAS", "Tesorería"},
	{"TRAMITE", "Mesa de Partes"},
	{"TRAMITE DOCUMENTARIO", "Mesa de Partes"},
	{"MEDIO AMBIENTE", "Desarrollo Urbano"},
	{"LOGISTICA", "Abastecimiento"},
}

// NormalizarOficina busca la primera variante conocida contenida en el texto
// (sin distinguir mayúsculas) y devuelve su nombre canónico. Sin coincidencia,
// devuelve el original con la primera letra en mayúscula y el resto en minúscula.
func NormalizarOficina(oficina string) string {
	o := strings.ToUpper(oficina)
	for _, m := range oficinaMapeo {
		if strings.Contains(o, m.patron) {
			return m.canonico
		}
	}
	if oficina == "" {
		return ""
	}
	runes := []rune(oficina)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
