package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/pdf"
)

func TestGenerateInvoicePDF(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNumber: "INV-0001",
		CustomerName:  "Acme",
		Date:          "2024-03-01",
		DueDate:       "2024-03-31",
		Items: []entity.InvoiceItem{{
			ID: "1", Description: "Egg crates", Quantity: decimal.NewFromInt(5),
			UnitPrice: decimal.NewFromInt(5), Total: decimal.NewFromInt(25),
		}},
		Subtotal: decimal.NewFromInt(25),
		TaxRate:  decimal.NewFromInt(10),
		Tax:      decimal.RequireFromString("2.5"),
		Total:    decimal.RequireFromString("27.5"),
		Status:   entity.InvoiceDraft,
	}

	out, err := pdf.NewMarotoPDFGenerator("Granja Sol").GenerateInvoicePDF(context.Background(), inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateInvoicePDF_SinLineas(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator("").GenerateInvoicePDF(context.Background(), &entity.Invoice{InvoiceNumber: "INV-0002"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
