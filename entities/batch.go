package entities

import "time"

type Batch struct {
	BatchID                  uint      `gorm:"primaryKey" json:"batch_id"`
	UserID                   uint      `json:"user_id" gorm:"index"`
	SubstrateType            string    `json:"substrate_type"` // straw|sawdust|compost|...
	SubstrateMoisturePercent float64   `json:"substrate_moisture_percent"`
	SpawnRatePercent         float64   `json:"spawn_rate_percent"`
	StartDate                time.Time `json:"start_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
