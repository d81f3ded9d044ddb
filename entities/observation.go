package entities

import "time"

// Observation is one day's environmental reading for a batch. At most one
// row exists per (batch_id, date); writes go through an upsert keyed on date.
type Observation struct {
	ObservationID             uint      `gorm:"primaryKey" json:"observation_id"`
	BatchID                   uint      `gorm:"uniqueIndex:idx_observation_batch_date" json:"batch_id"`
	Date                      time.Time `gorm:"uniqueIndex:idx_observation_batch_date" json:"date"`
	AmbientTemperatureCelsius float64   `json:"ambient_temperature_celsius"`
	RelativeHumidityPercent   float64   `json:"relative_humidity_percent"`
	CO2Level                  string    `gorm:"column:co2_level" json:"co2_level"` // low|medium|high
	LightHoursPerDay          float64   `json:"light_hours_per_day"`
	CreatedAt                 time.Time
}
