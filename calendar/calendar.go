// Package calendar organizes report lists into the Monday-start weekly grid
// shown by the calendar view.
package calendar

import (
	"strconv"
	"strings"
	"time"

	"ecodenuncias-web/models"
)

var nombresDias = [7]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// DiaCalendario is one day-bucket of the weekly grid. Empty days are present
// with an empty (non-nil) Denuncias slice.
type DiaCalendario struct {
	Fecha     string                   `json:"fecha"` // DD/MM/YYYY
	DiaSemana string                   `json:"dia_semana"`
	Denuncias []models.DenunciaResumen `json:"denuncias"`
}

// InicioDeSemana returns the Monday of the week containing ref, truncated to
// midnight in ref's location. Sunday belongs to the week that started six
// days earlier.
func InicioDeSemana(ref time.Time) time.Time {
	offset := 1 - int(ref.Weekday())
	if ref.Weekday() == time.Sunday {
		offset = -6
	}
	d := ref.AddDate(0, 0, offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// ParseFecha extracts the calendar date from a report's display date string
// ("DD/MM/YYYY HH:mm"). The time of day is discarded. Reports false for
// malformed input: wrong token count, non-numeric components, or values that
// do not name a real calendar date.
func ParseFecha(s string) (time.Time, bool) {
	fecha := strings.SplitN(strings.TrimSpace(s), " ", 2)[0]
	partes := strings.Split(fecha, "/")
	if len(partes) != 3 {
		return time.Time{}, false
	}

	dia, err1 := strconv.Atoi(partes[0])
	mes, err2 := strconv.Atoi(partes[1])
	anio, err3 := strconv.Atoi(partes[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if mes < 1 || mes > 12 || dia < 1 || anio < 1 {
		return time.Time{}, false
	}

	t := time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (32/01 becomes 01/02); reject those.
	if t.Day() != dia || t.Month() != time.Month(mes) || t.Year() != anio {
		return time.Time{}, false
	}
	return t, true
}

func mismaFecha(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// OrganizarPorDias partitions denuncias into the seven day-buckets of the week
// containing fechaReferencia. Each report lands in at most one bucket by exact
// calendar-date equality; reports outside the window or with unparseable dates
// are excluded. The result is deterministic and preserves input order within
// each bucket.
func OrganizarPorDias(denuncias []models.DenunciaResumen, fechaReferencia time.Time) []DiaCalendario {
	inicio := InicioDeSemana(fechaReferencia)

	type conFecha struct {
		denuncia models.DenunciaResumen
		fecha    time.Time
	}
	parseadas := make([]conFecha, 0, len(denuncias))
	for _, d := range denuncias {
		f, ok := ParseFecha(d.Fecha)
		if !ok {
			continue
		}
		parseadas = append(parseadas, conFecha{denuncia: d, fecha: f})
	}

	dias := make([]DiaCalendario, 0, 7)
	for i := 0; i < 7; i++ {
		fecha := inicio.AddDate(0, 0, i)
		dia := DiaCalendario{
			Fecha:     fecha.Format("02/01/2006"),
			DiaSemana: nombresDias[i],
			Denuncias: []models.DenunciaResumen{},
		}
		for _, p := range parseadas {
			if mismaFecha(p.fecha, fecha) {
				dia.Denuncias = append(dia.Denuncias, p.denuncia)
			}
		}
		dias = append(dias, dia)
	}
	return dias
}
