package usecase

import (
	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// FlockUseCase CRUD de parvadas.
type FlockUseCase = Registry[entity.Flock, dto.FlockRequest]

// NewFlockUseCase construye el caso de uso.
func NewFlockUseCase(repo repository.Collection[entity.Flock], audit AuditRecorder) *FlockUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.Flock, dto.FlockRequest]{
		Subject: "FLOCK",
		Noun:    "flock",
		Build: func(in dto.FlockRequest, _ *entity.Flock) (entity.Flock, error) {
			return entity.Flock{
				Name:      in.Name,
				Breed:     in.Breed,
				Quantity:  in.Quantity,
				HatchDate: in.HatchDate,
				Status:    in.Status,
				Notes:     in.Notes,
			}, nil
		},
		Describe: func(f entity.Flock) string { return f.Name },
	})
}

// BatchUseCase CRUD de lotes.
type BatchUseCase = Registry[entity.Batch, dto.BatchRequest]

// NewBatchUseCase construye el caso de uso. La cantidad actual no puede superar la inicial.
func NewBatchUseCase(repo repository.Collection[entity.Batch], audit AuditRecorder) *BatchUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.Batch, dto.BatchRequest]{
		Subject: "BATCH",
		Noun:    "batch",
		Build: func(in dto.BatchRequest, _ *entity.Batch) (entity.Batch, error) {
			if in.CurrentQuantity > in.InitialQuantity {
				return entity.Batch{}, domain.NewValidationError("la cantidad actual supera la inicial", "current_quantity")
			}
			return entity.Batch{
				BatchNumber:     in.BatchNumber,
				BatchName:       in.BatchName,
				Breed:           in.Breed,
				InitialQuantity: in.InitialQuantity,
				CurrentQuantity: in.CurrentQuantity,
				DateReceived:    in.DateReceived,
				AgeInWeeks:      in.AgeInWeeks,
				Status:          in.Status,
				Notes:           in.Notes,
			}, nil
		},
		Describe: func(b entity.Batch) string { return b.BatchNumber + " - " + b.BatchName },
	})
}

// MortalityUseCase CRUD de registros de mortalidad.
// No ajusta current_quantity de los lotes; la conciliación es manual.
type MortalityUseCase = Registry[entity.Mortality, dto.MortalityRequest]

// NewMortalityUseCase construye el caso de uso.
func NewMortalityUseCase(repo repository.Collection[entity.Mortality], audit AuditRecorder) *MortalityUseCase {
	return NewRegistry(repo, audit, RegistryDef[entity.Mortality, dto.MortalityRequest]{
		Subject: "MORTALITY",
		Noun:    "mortality record",
		Build: func(in dto.MortalityRequest, _ *entity.Mortality) (entity.Mortality, error) {
			return entity.Mortality{Date: in.Date, Quantity: in.Quantity, Cause: in.Cause, Notes: in.Notes}, nil
		},
		Describe: func(m entity.Mortality) string { return m.Date + " - " + m.Cause },
	})
}
