package entity

import "github.com/shopspring/decimal"

// Tipos de registro sanitario.
const (
	HealthVaccination = "vaccination"
	HealthDisease     = "disease"
	HealthTreatment   = "treatment"
	HealthCheckup     = "checkup"
	HealthOther       = "other"
)

// HealthRecord evento sanitario de una parvada.
type HealthRecord struct {
	Meta
	FlockID     string           `json:"flock_id"`
	RecordDate  string           `json:"record_date"`
	RecordType  string           `json:"record_type"`
	Description string           `json:"description"`
	Treatment   string           `json:"treatment,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Notes       string           `json:"notes"`
}
