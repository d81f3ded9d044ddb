package repository

import "mycolog/entities"

type HarvestRepository interface {
	// Upsert inserts h, or overwrites the yield fields of the existing row
	// with the same (batch_id, flush_number). Returns the stored row.
	Upsert(h *entities.Harvest) (*entities.Harvest, error)
	ListByBatch(batchID uint) ([]entities.Harvest, error)
}
