package repository

import (
	"context"

	"github.com/jhoicas/farm-ledger/internal/domain/entity"
)

// Claves de las colecciones persistidas.
const (
	KeyFlocks                = "flocks"
	KeyBatches               = "batches"
	KeyFeed                  = "feed"
	KeyHealthRecords         = "healthRecords"
	KeyProductionRecords     = "productionRecords"
	KeyInventoryItems        = "inventoryItems"
	KeyInventoryTransactions = "inventoryTransactions"
	KeyBirdSales             = "birdSales"
	KeyEggSales              = "eggSales"
	KeyPurchases             = "purchases"
	KeyMortality             = "mortality"
	KeyCustomers             = "customers"
	KeyInvoices              = "invoices"
	KeyUsers                 = "users"
	KeyAuditLogs             = "auditLogs"
)

// Lister lectura del snapshot completo de una colección.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Collection puerto genérico de un registro de entidades.
// Update con un id inexistente no escribe y devuelve found=false; Remove es idempotente.
type Collection[T any] interface {
	Lister[T]
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, actor *entity.Actor, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, bool, error)
	Remove(ctx context.Context, id string) error
	// Apply ejecuta fn sobre el snapshot actual y persiste el resultado.
	// Si fn devuelve error no se escribe nada.
	Apply(ctx context.Context, fn func(items []T) ([]T, error)) error
}
