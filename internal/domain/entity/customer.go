package entity

// Tipos de cliente.
const (
	CustomerIndividual = "individual"
	CustomerBusiness   = "business"
)

// Customer comprador de aves o huevos (facturación).
type Customer struct {
	Meta
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CustomerType string `json:"customer_type"`
	TaxID        string `json:"tax_id,omitempty"`
	Notes        string `json:"notes"`
}
