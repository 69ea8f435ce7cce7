package entity

import "github.com/shopspring/decimal"

// ProductionRecord producción diaria de una parvada.
type ProductionRecord struct {
	Meta
	FlockID        string          `json:"flock_id"`
	RecordDate     string          `json:"record_date"`
	EggsCollected  int             `json:"eggs_collected"`
	MortalityCount int             `json:"mortality_count"`
	FeedConsumedKg decimal.Decimal `json:"feed_consumed_kg"`
	Notes          string          `json:"notes"`
}
