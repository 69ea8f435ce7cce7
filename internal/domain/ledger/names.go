package ledger

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeName clave de comparación entre el comprador (texto libre) de una venta y el nombre de un cliente.
// Usa plegado de mayúsculas Unicode, no solo ASCII.
func NormalizeName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// SameBuyer compara sin distinguir mayúsculas ni espacios en los extremos.
func SameBuyer(buyer, customerName string) bool {
	return NormalizeName(buyer) == NormalizeName(customerName)
}
