package entity

// Mortality registro de aves muertas en una fecha.
type Mortality struct {
	Meta
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
	Cause    string `json:"cause"`
	Notes    string `json:"notes"`
}
