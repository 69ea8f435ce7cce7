package entity

import "time"

// DateLayout formato de las fechas de calendario almacenadas (sin hora ni zona).
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha de calendario como medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate formatea la fecha civil de t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CivilDate trunca t a su fecha de calendario en UTC conservando año, mes y día locales.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
