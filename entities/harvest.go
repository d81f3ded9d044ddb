package entities

import "time"

// Harvest is one flush-collection event. At most one row exists per
// (batch_id, flush_number); writes go through an upsert keyed on flush number.
type Harvest struct {
	HarvestID         uint      `gorm:"primaryKey" json:"harvest_id"`
	BatchID           uint      `gorm:"uniqueIndex:idx_harvest_batch_flush" json:"batch_id"`
	FlushNumber       int       `gorm:"uniqueIndex:idx_harvest_batch_flush" json:"flush_number"`
	FlushYieldKg      float64   `json:"flush_yield_kg"`
	TotalBatchYieldKg float64   `json:"total_batch_yield_kg"`
	Date              time.Time `json:"date"`
	CreatedAt         time.Time
}
