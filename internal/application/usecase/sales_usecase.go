package usecase

import (
	"fmt"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// BirdSaleUseCase CRUD de ventas de aves. total_amount se calcula al guardar.
type BirdSaleUseCase = Registry[entity.BirdSale, dto.BirdSaleRequest]

// NewBirdSaleUseCase construye el caso de uso.
func NewBirdSaleUseCase(repo repository.Collection[entity.BirdSale], audit AuditRecorder) *BirdSaleUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.BirdSale, dto.BirdSaleRequest]{
		Subject: "BIRD_SALE",
		Noun:    "bird sale",
		Build: func(in dto.BirdSaleRequest, _ *entity.BirdSale) (entity.BirdSale, error) {
			return entity.BirdSale{
				Date:         in.Date,
				Quantity:     in.Quantity,
				PricePerBird: in.PricePerBird,
				TotalAmount:  ledger.HeadTotal(in.Quantity, in.PricePerBird),
				Buyer:        in.Buyer,
				Notes:        in.Notes,
			}, nil
		},
		Describe: func(s entity.BirdSale) string { return fmt.Sprintf("%d birds to %s", s.Quantity, s.Buyer) },
	})
}

// EggSaleUseCase CRUD de ventas de huevos (por cubeta).
type EggSaleUseCase = Registry[entity.EggSale, dto.EggSaleRequest]

// NewEggSaleUseCase construye el caso de uso.
func NewEggSaleUseCase(repo repository.Collection[entity.EggSale], audit AuditRecorder) *EggSaleUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.EggSale, dto.EggSaleRequest]{
		Subject: "EGG_SALE",
		Noun:    "egg sale",
		Build: func(in dto.EggSaleRequest, _ *entity.EggSale) (entity.EggSale, error) {
			return entity.EggSale{
				Date:          in.Date,
				Quantity:      in.Quantity,
				PricePerCrate: in.PricePerCrate,
				TotalAmount:   ledger.HeadTotal(in.Quantity, in.PricePerCrate),
				Buyer:         in.Buyer,
				Notes:         in.Notes,
			}, nil
		},
		Describe: func(s entity.EggSale) string { return fmt.Sprintf("%d crates to %s", s.Quantity, s.Buyer) },
	})
}

// PurchaseUseCase CRUD de compras de insumos.
type PurchaseUseCase = Registry[entity.Purchase, dto.PurchaseRequest]

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(repo repository.Collection[entity.Purchase], audit AuditRecorder) *PurchaseUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.Purchase, dto.PurchaseRequest]{
		Subject: "PURCHASE",
		Noun:    "purchase",
		Build: func(in dto.PurchaseRequest, _ *entity.Purchase) (entity.Purchase, error) {
			return entity.Purchase{
				Date:        in.Date,
				Item:        in.Item,
				Quantity:    in.Quantity,
				UnitPrice:   in.UnitPrice,
				TotalAmount: ledger.LineTotal(in.Quantity, in.UnitPrice),
				Supplier:    in.Supplier,
				Notes:       in.Notes,
			}, nil
		},
		Describe: func(p entity.Purchase) string { return p.Item },
	})
}

// CustomerUseCase CRUD de clientes. Los nombres pueden repetirse.
type CustomerUseCase = Registry[entity.Customer, dto.CustomerRequest]

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.Collection[entity.Customer], audit AuditRecorder) *CustomerUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.Customer, dto.CustomerRequest]{
		Subject: "CUSTOMER",
		Noun:    "customer",
		Build: func(in dto.CustomerRequest, _ *entity.Customer) (entity.Customer, error) {
			return entity.Customer{
				Name:         in.Name,
				Email:        in.Email,
				Phone:        in.Phone,
				Address:      in.Address,
				CustomerType: in.CustomerType,
				TaxID:        in.TaxID,
				Notes:        in.Notes,
			}, nil
		},
		Describe: func(c entity.Customer) string { return c.Name },
	})
}
