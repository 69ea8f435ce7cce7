package dto

import "github.com/shopspring/decimal"

// CustomerRequest body para POST/PUT /api/customers.
type CustomerRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CustomerType string `json:"customer_type" validate:"required,oneof=individual business"`
	TaxID        string `json:"tax_id"`
	Notes        string `json:"notes"`
}

// InvoiceRequest body para POST/PUT /api/invoices. Los totales se calculan en el servidor.
type InvoiceRequest struct {
	CustomerID string               `json:"customer_id" validate:"required"`
	Date       string               `json:"date" validate:"required,datetime=2006-01-02"`
	DueDate    string               `json:"due_date" validate:"required,datetime=2006-01-02"`
	Items      []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	TaxRate    decimal.Decimal      `json:"tax_rate" validate:"gte=0"`
	Status     string               `json:"status" validate:"omitempty,oneof=draft sent paid overdue"`
	Notes      string               `json:"notes"`
}

// InvoiceItemRequest línea de factura (descripción, cantidad, precio unitario).
type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// InvoiceFromSaleRequest body para POST /api/invoices/from-sale.
type InvoiceFromSaleRequest struct {
	SaleType string `json:"sale_type" validate:"required,oneof=egg bird"`
	SaleID   string `json:"sale_id" validate:"required"`
}
