package entity

import "time"

// Estados de una parvada.
const (
	FlockStatusActive    = "active"
	FlockStatusSold      = "sold"
	FlockStatusCompleted = "completed"
)

// Flock grupo de aves criadas juntas.
type Flock struct {
	Meta
	Name      string `json:"name"`
	Breed     string `json:"breed"`
	Quantity  int    `json:"quantity"`
	HatchDate string `json:"hatch_date"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// AgeInWeeks semanas completas desde la eclosión hasta now; 0 si la fecha no es válida o es futura.
func (f Flock) AgeInWeeks(now time.Time) int {
	hatch, err := ParseDate(f.HatchDate)
	if err != nil {
		return 0
	}
	days := int(CivilDate(now).Sub(hatch).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 7
}
