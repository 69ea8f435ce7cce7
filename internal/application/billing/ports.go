package billing

import (
	"context"

	"github.com/jhoicas/farm-ledger/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}

// AuditRecorder puerto de la bitácora de auditoría.
type AuditRecorder interface {
	Record(ctx context.Context, actor *entity.Actor, action, details string) error
}
