package dto

import "github.com/shopspring/decimal"

// FlockRequest body para POST/PUT /api/flocks.
type FlockRequest struct {
	Name      string `json:"name" validate:"required"`
	Breed     string `json:"breed"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	HatchDate string `json:"hatch_date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=active sold completed"`
	Notes     string `json:"notes"`
}

// BatchRequest body para POST/PUT /api/batches.
type BatchRequest struct {
	BatchNumber     string `json:"batch_number" validate:"required"`
	BatchName       string `json:"batch_name"`
	Breed           string `json:"breed"`
	InitialQuantity int    `json:"initial_quantity" validate:"gte=0"`
	CurrentQuantity int    `json:"current_quantity" validate:"gte=0"`
	DateReceived    string `json:"date_received" validate:"required,datetime=2006-01-02"`
	AgeInWeeks      int    `json:"age_in_weeks" validate:"gte=0"`
	Status          string `json:"status" validate:"required,oneof=active sold completed"`
	Notes           string `json:"notes"`
}

// FeedRequest body para POST/PUT /api/feed.
type FeedRequest struct {
	FeedType     string          `json:"feed_type" validate:"required"`
	QuantityKg   decimal.Decimal `json:"quantity_kg" validate:"gte=0"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Supplier     string          `json:"supplier"`
	PurchaseDate string          `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate   string          `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        string          `json:"notes"`
}

// HealthRecordRequest body para POST/PUT /api/health-records.
type HealthRecordRequest struct {
	FlockID     string           `json:"flock_id" validate:"required"`
	RecordDate  string           `json:"record_date" validate:"required,datetime=2006-01-02"`
	RecordType  string           `json:"record_type" validate:"required,oneof=vaccination disease treatment checkup other"`
	Description string           `json:"description" validate:"required"`
	Treatment   string           `json:"treatment"`
	Cost        *decimal.Decimal `json:"cost" validate:"omitempty,gte=0"`
	Notes       string           `json:"notes"`
}

// ProductionRecordRequest body para POST/PUT /api/production.
type ProductionRecordRequest struct {
	FlockID        string          `json:"flock_id" validate:"required"`
	RecordDate     string          `json:"record_date" validate:"required,datetime=2006-01-02"`
	EggsCollected  int             `json:"eggs_collected" validate:"gte=0"`
	MortalityCount int             `json:"mortality_count" validate:"gte=0"`
	FeedConsumedKg decimal.Decimal `json:"feed_consumed_kg" validate:"gte=0"`
	Notes          string          `json:"notes"`
}

// MortalityRequest body para POST/PUT /api/mortality.
type MortalityRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	Cause    string `json:"cause" validate:"required"`
	Notes    string `json:"notes"`
}
