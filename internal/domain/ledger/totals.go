// Package ledger contiene las reglas de derivación puras del libro de la granja.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farm-ledger/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// LineTotal cantidad × precio unitario.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// HeadTotal total de una venta por cabezas o cubetas.
func HeadTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return LineTotal(decimal.NewFromInt(int64(quantity)), unitPrice)
}

// Totals subtotal, impuesto y total de una factura.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// PriceItems recalcula el total de cada línea en sitio.
func PriceItems(items []entity.InvoiceItem) {
	for i := range items {
		items[i].Total = LineTotal(items[i].Quantity, items[i].UnitPrice)
	}
}

// InvoiceTotals subtotal = Σ total de línea; tax = subtotal × taxRate / 100; total = subtotal + tax.
// Usa el total ya calculado de cada línea.
func InvoiceTotals(items []entity.InvoiceItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total)
	}
	tax := subtotal.Mul(taxRate).Div(hundred)
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal.Add(tax)}
}

// MortalityRate (inicial − actual) / inicial × 100; 0 cuando inicial es 0.
func MortalityRate(initial, current int) float64 {
	if initial == 0 {
		return 0
	}
	return float64(initial-current) / float64(initial) * 100
}

// InventoryValue Σ cantidad × precio unitario de los artículos.
func InventoryValue(items []entity.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(LineTotal(it.Quantity, it.UnitPrice))
	}
	return total
}

// WeightedAverageCost costo promedio ponderado tras una entrada.
// ((stock × costo) + (entrada × costoEntrada)) / (stock + entrada); 0 si la suma no es positiva.
func WeightedAverageCost(stock, cost, incoming, incomingCost decimal.Decimal) decimal.Decimal {
	sum := stock.Add(incoming)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return stock.Mul(cost).Add(incoming.Mul(incomingCost)).Div(sum)
}
