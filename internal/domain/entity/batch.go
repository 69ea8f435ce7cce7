package entity

// Estados de un lote.
const (
	BatchStatusActive    = "active"
	BatchStatusSold      = "sold"
	BatchStatusCompleted = "completed"
)

// Batch cohorte de aves recibida en una fecha, con cantidad inicial y actual.
type Batch struct {
	Meta
	BatchNumber     string `json:"batch_number"`
	BatchName       string `json:"batch_name"`
	Breed           string `json:"breed"`
	InitialQuantity int    `json:"initial_quantity"`
	CurrentQuantity int    `json:"current_quantity"`
	DateReceived    string `json:"date_received"`
	AgeInWeeks      int    `json:"age_in_weeks"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
}
