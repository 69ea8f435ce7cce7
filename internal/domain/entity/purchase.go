package entity

import "github.com/shopspring/decimal"

// Purchase compra de insumos.
type Purchase struct {
	Meta
	Date        string          `json:"date"`
	Item        string          `json:"item"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Supplier    string          `json:"supplier"`
	Notes       string          `json:"notes"`
}
