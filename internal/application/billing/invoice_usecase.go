package billing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

const (
	subjectInvoice = "INVOICE"
	// DefaultTaxRate porcentaje aplicado a las facturas generadas desde una venta.
	DefaultTaxRate = 10
	// PaymentTermDays días de plazo de las facturas generadas desde una venta.
	PaymentTermDays = 30
)

// Sources colecciones de solo lectura que alimentan la facturación.
type Sources struct {
	Customers repository.Lister[entity.Customer]
	EggSales  repository.Lister[entity.EggSale]
	BirdSales repository.Lister[entity.BirdSale]
}

// InvoiceUseCase registro de facturas: numeración, copia del cliente y totales calculados.
type InvoiceUseCase struct {
	invoices repository.Collection[entity.Invoice]
	src      Sources
	audit    AuditRecorder
	now      func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.Collection[entity.Invoice], src Sources, audit AuditRecorder) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, src: src, audit: audit, now: time.Now}
}

// List devuelve las facturas en el orden almacenado.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]entity.Invoice, error) {
	return uc.invoices.List(ctx)
}

// Get obtiene una factura por ID.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (entity.Invoice, error) {
	inv, err := uc.invoices.Get(ctx, id)
	if err != nil {
		return entity.Invoice{}, err
	}
	if inv == nil {
		return entity.Invoice{}, domain.ErrNotFound
	}
	return *inv, nil
}

// Create emite una factura nueva para un cliente existente.
// El número INV-NNNN se asigna bajo el candado de la colección.
func (uc *InvoiceUseCase) Create(ctx context.Context, actor *entity.Actor, in dto.InvoiceRequest) (entity.Invoice, error) {
	if actor == nil {
		return entity.Invoice{}, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return entity.Invoice{}, err
	}
	customer, err := uc.customerByID(ctx, in.CustomerID)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv := entity.Invoice{
		Date:    in.Date,
		DueDate: in.DueDate,
		Items:   itemsFromRequest(in.Items),
		TaxRate: in.TaxRate,
		Status:  statusOrDraft(in.Status),
		Notes:   in.Notes,
	}
	snapshotCustomer(&inv, customer)
	priceInvoice(&inv)

	return uc.issue(ctx, actor, inv)
}

// CreateFromSale genera una factura borrador a partir de una venta de huevos o de aves.
// El cliente se busca por nombre sin distinguir mayúsculas; si no existe devuelve ErrNotFound.
func (uc *InvoiceUseCase) CreateFromSale(ctx context.Context, actor *entity.Actor, in dto.InvoiceFromSaleRequest) (entity.Invoice, error) {
	if actor == nil {
		return entity.Invoice{}, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return entity.Invoice{}, err
	}

	var (
		buyer, date, notes string
		item               entity.InvoiceItem
	)
	switch in.SaleType {
	case "egg":
		sale, err := findByID(ctx, uc.src.EggSales, in.SaleID)
		if err != nil {
			return entity.Invoice{}, err
		}
		buyer, date, notes = sale.Buyer, sale.Date, sale.Notes
		item = entity.InvoiceItem{
			Description: fmt.Sprintf("Egg Sale - %d crates", sale.Quantity),
			Quantity:    decimal.NewFromInt(int64(sale.Quantity)),
			UnitPrice:   sale.PricePerCrate,
		}
	case "bird":
		sale, err := findByID(ctx, uc.src.BirdSales, in.SaleID)
		if err != nil {
			return entity.Invoice{}, err
		}
		buyer, date, notes = sale.Buyer, sale.Date, sale.Notes
		item = entity.InvoiceItem{
			Description: fmt.Sprintf("Bird Sale - %d birds", sale.Quantity),
			Quantity:    decimal.NewFromInt(int64(sale.Quantity)),
			UnitPrice:   sale.PricePerBird,
		}
	}

	customer, err := uc.customerByName(ctx, buyer)
	if err != nil {
		return entity.Invoice{}, err
	}
	issued, err := entity.ParseDate(date)
	if err != nil {
		return entity.Invoice{}, domain.NewValidationError("fecha de venta inválida", "date")
	}

	item.ID = "1"
	inv := entity.Invoice{
		Date:    date,
		DueDate: entity.FormatDate(issued.AddDate(0, 0, PaymentTermDays)),
		Items:   []entity.InvoiceItem{item},
		TaxRate: decimal.NewFromInt(DefaultTaxRate),
		Status:  entity.InvoiceDraft,
		Notes:   notes,
	}
	snapshotCustomer(&inv, customer)
	priceInvoice(&inv)

	return uc.issue(ctx, actor, inv)
}

// Update reemplaza el contenido de la factura y recalcula todos los totales.
// El número de factura no cambia.
func (uc *InvoiceUseCase) Update(ctx context.Context, actor *entity.Actor, id string, in dto.InvoiceRequest) (entity.Invoice, error) {
	if actor == nil {
		return entity.Invoice{}, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return entity.Invoice{}, err
	}
	existing, err := uc.Get(ctx, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv := entity.Invoice{
		InvoiceNumber: existing.InvoiceNumber,
		Date:          in.Date,
		DueDate:       in.DueDate,
		Items:         itemsFromRequest(in.Items),
		TaxRate:       in.TaxRate,
		Status:        statusOrDraft(in.Status),
		Notes:         in.Notes,
	}
	if in.CustomerID == existing.CustomerID {
		copyCustomerSnapshot(&inv, existing)
		if customer, err := uc.customerByID(ctx, in.CustomerID); err == nil {
			snapshotCustomer(&inv, customer)
		}
	} else {
		customer, err := uc.customerByID(ctx, in.CustomerID)
		if err != nil {
			return entity.Invoice{}, err
		}
		snapshotCustomer(&inv, customer)
	}
	priceInvoice(&inv)

	updated, found, err := uc.invoices.Update(ctx, id, inv)
	if err != nil {
		return entity.Invoice{}, err
	}
	if !found {
		return entity.Invoice{}, domain.ErrNotFound
	}
	uc.record(ctx, actor, entity.VerbUpdate, "Updated", updated)
	return updated, nil
}

// Delete elimina la factura. Eliminar un id inexistente no es error.
func (uc *InvoiceUseCase) Delete(ctx context.Context, actor *entity.Actor, id string) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	existing, err := uc.invoices.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if err := uc.invoices.Remove(ctx, id); err != nil {
		return err
	}
	uc.record(ctx, actor, entity.VerbDelete, "Deleted", *existing)
	return nil
}

func (uc *InvoiceUseCase) issue(ctx context.Context, actor *entity.Actor, inv entity.Invoice) (entity.Invoice, error) {
	inv.Meta = entity.Meta{ID: uuid.New().String(), CreatedBy: actor.ID(), CreatedAt: uc.now().UTC()}
	err := uc.invoices.Apply(ctx, func(items []entity.Invoice) ([]entity.Invoice, error) {
		inv.InvoiceNumber = NextInvoiceNumber(items)
		return append(items, inv), nil
	})
	if err != nil {
		return entity.Invoice{}, err
	}
	uc.record(ctx, actor, entity.VerbCreate, "Created", inv)
	return inv, nil
}

func (uc *InvoiceUseCase) record(ctx context.Context, actor *entity.Actor, verb, past string, inv entity.Invoice) {
	if uc.audit == nil {
		return
	}
	_ = uc.audit.Record(ctx, actor, entity.AuditAction(verb, subjectInvoice),
		fmt.Sprintf("%s invoice: %s", past, inv.InvoiceNumber))
}

func (uc *InvoiceUseCase) customerByID(ctx context.Context, id string) (entity.Customer, error) {
	customers, err := uc.src.Customers.List(ctx)
	if err != nil {
		return entity.Customer{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Customer{}, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
}

func (uc *InvoiceUseCase) customerByName(ctx context.Context, name string) (entity.Customer, error) {
	customers, err := uc.src.Customers.List(ctx)
	if err != nil {
		return entity.Customer{}, err
	}
	for _, c := range customers {
		if ledger.SameBuyer(name, c.Name) {
			return c, nil
		}
	}
	return entity.Customer{}, fmt.Errorf("%w: el cliente %q no está registrado", domain.ErrNotFound, name)
}

// NextInvoiceNumber número siguiente INV-NNNN: cantidad de facturas + 1, avanzando si ya está tomado.
func NextInvoiceNumber(invoices []entity.Invoice) string {
	taken := make(map[string]struct{}, len(invoices))
	for _, inv := range invoices {
		taken[inv.InvoiceNumber] = struct{}{}
	}
	for n := len(invoices) + 1; ; n++ {
		num := fmt.Sprintf("INV-%04d", n)
		if _, ok := taken[num]; !ok {
			return num
		}
	}
}

func findByID[T any, P interface {
	*T
	Base() *entity.Meta
}](ctx context.Context, src repository.Lister[T], id string) (T, error) {
	items, err := src.List(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	for i := range items {
		if P(&items[i]).Base().ID == id {
			return items[i], nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: venta %s", domain.ErrNotFound, id)
}

func itemsFromRequest(in []dto.InvoiceItemRequest) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, len(in))
	for i, it := range in {
		items[i] = entity.InvoiceItem{
			ID:          strconv.Itoa(i + 1),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return items
}

func priceInvoice(inv *entity.Invoice) {
	ledger.PriceItems(inv.Items)
	t := ledger.InvoiceTotals(inv.Items, inv.TaxRate)
	inv.Subtotal, inv.Tax, inv.Total = t.Subtotal, t.Tax, t.Total
}

func snapshotCustomer(inv *entity.Invoice, c entity.Customer) {
	inv.CustomerID = c.ID
	inv.CustomerName = c.Name
	inv.CustomerEmail = c.Email
	inv.CustomerPhone = c.Phone
	inv.CustomerAddress = c.Address
}

func copyCustomerSnapshot(dst *entity.Invoice, src entity.Invoice) {
	dst.CustomerID = src.CustomerID
	dst.CustomerName = src.CustomerName
	dst.CustomerEmail = src.CustomerEmail
	dst.CustomerPhone = src.CustomerPhone
	dst.CustomerAddress = src.CustomerAddress
}

func statusOrDraft(s string) string {
	if s == "" {
		return entity.InvoiceDraft
	}
	return s
}
