package ledger

import (
	"time"

	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
)

// DateRange rango de fechas de calendario, inclusivo en ambos extremos.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange interpreta start y end (YYYY-MM-DD). end anterior a start es inválido.
func NewDateRange(start, end string) (DateRange, error) {
	s, err := entity.ParseDate(start)
	if err != nil {
		return DateRange{}, domain.NewValidationError("fecha inicial inválida", "start_date")
	}
	e, err := entity.ParseDate(end)
	if err != nil {
		return DateRange{}, domain.NewValidationError("fecha final inválida", "end_date")
	}
	if e.Before(s) {
		return DateRange{}, domain.NewValidationError("la fecha final es anterior a la inicial", "start_date", "end_date")
	}
	return DateRange{Start: s, End: e}, nil
}

// TrailingDays rango [today − days, today].
func TrailingDays(today time.Time, days int) DateRange {
	end := entity.CivilDate(today)
	return DateRange{Start: end.AddDate(0, 0, -days), End: end}
}

// Contains indica si date cae dentro del rango; fechas inválidas quedan fuera.
func (r DateRange) Contains(date string) bool {
	t, err := entity.ParseDate(date)
	if err != nil {
		return false
	}
	return !t.Before(r.Start) && !t.After(r.End)
}

// String "YYYY-MM-DD to YYYY-MM-DD".
func (r DateRange) String() string {
	return entity.FormatDate(r.Start) + " to " + entity.FormatDate(r.End)
}
