package usecase

import (
	"fmt"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// FeedUseCase CRUD de existencias de alimento.
type FeedUseCase = Registry[entity.FeedItem, dto.FeedRequest]

// NewFeedUseCase construye el caso de uso.
func NewFeedUseCase(repo repository.Collection[entity.FeedItem], audit AuditRecorder) *FeedUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.FeedItem, dto.FeedRequest]{
		Subject: "FEED",
		Noun:    "feed",
		Build: func(in dto.FeedRequest, _ *entity.FeedItem) (entity.FeedItem, error) {
			return entity.FeedItem{
				FeedType:     in.FeedType,
				QuantityKg:   in.QuantityKg,
				UnitPrice:    in.UnitPrice,
				Supplier:     in.Supplier,
				PurchaseDate: in.PurchaseDate,
				ExpiryDate:   in.ExpiryDate,
				Notes:        in.Notes,
			}, nil
		},
		Describe: func(f entity.FeedItem) string { return fmt.Sprintf("%s (%s kg)", f.FeedType, f.QuantityKg) },
	})
}

// HealthUseCase CRUD de registros sanitarios.
type HealthUseCase = Registry[entity.HealthRecord, dto.HealthRecordRequest]

// NewHealthUseCase construye el caso de uso.
func NewHealthUseCase(repo repository.Collection[entity.HealthRecord], audit AuditRecorder) *HealthUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.HealthRecord, dto.HealthRecordRequest]{
		Subject: "HEALTH_RECORD",
		Noun:    "health record",
		Build: func(in dto.HealthRecordRequest, _ *entity.HealthRecord) (entity.HealthRecord, error) {
			return entity.HealthRecord{
				FlockID:     in.FlockID,
				RecordDate:  in.RecordDate,
				RecordType:  in.RecordType,
				Description: in.Description,
				Treatment:   in.Treatment,
				Cost:        in.Cost,
				Notes:       in.Notes,
			}, nil
		},
		Describe: func(h entity.HealthRecord) string { return h.RecordType + " - " + h.Description },
	})
}

// ProductionUseCase CRUD de registros de producción diaria.
type ProductionUseCase = Registry[entity.ProductionRecord, dto.ProductionRecordRequest]

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(repo repository.Collection[entity.ProductionRecord], audit AuditRecorder) *ProductionUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.ProductionRecord, dto.ProductionRecordRequest]{
		Subject: "PRODUCTION_RECORD",
		Noun:    "production record",
		Build: func(in dto.ProductionRecordRequest, _ *entity.ProductionRecord) (entity.ProductionRecord, error) {
			return entity.ProductionRecord{
				FlockID:        in.FlockID,
				RecordDate:     in.RecordDate,
				EggsCollected:  in.EggsCollected,
				MortalityCount: in.MortalityCount,
				FeedConsumedKg: in.FeedConsumedKg,
				Notes:          in.Notes,
			}, nil
		},
		Describe: func(p entity.ProductionRecord) string {
			return fmt.Sprintf("%s - %d eggs", p.RecordDate, p.EggsCollected)
		},
	})
}
