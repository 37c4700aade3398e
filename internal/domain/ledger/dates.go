package ledger

import "time"

// DateOnly normaliza un instante a su fecha calendario (medianoche UTC).
// Todas las comparaciones de fechas del paquete operan sobre valores
// normalizados así, para que la hora y la zona no afecten el resultado.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween devuelve los días calendario completos entre from y to.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// DateRange rango inclusivo [Start, End] sobre fechas calendario.
// Cualquiera de los extremos puede ser nil, lo que significa sin cota por ese lado.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains indica si la fecha cae dentro del rango.
func (r DateRange) Contains(d time.Time) bool {
	d = DateOnly(d)
	if r.Start != nil && d.Before(DateOnly(*r.Start)) {
		return false
	}
	if r.End != nil && d.After(DateOnly(*r.End)) {
		return false
	}
	return true
}
