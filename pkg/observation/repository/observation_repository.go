package repository

import "mycolog/entities"

type ObservationRepository interface {
	// Upsert inserts o, or overwrites the measured fields of the existing
	// row with the same (batch_id, date). Returns the stored row.
	Upsert(o *entities.Observation) (*entities.Observation, error)
	ListByBatch(batchID uint) ([]entities.Observation, error)
	// ByDateAsc feeds the insight engine: oldest reading first.
	ByDateAsc(batchID uint) ([]entities.Observation, error)
}
