package repository

import "mycolog/entities"

type BatchRepository interface {
	Create(b *entities.Batch) error
	ListByUser(userID uint) ([]entities.Batch, error)
	ListByUsername(username string) ([]entities.Batch, error)
	FindByID(id uint) (*entities.Batch, error)
	// Detail returns the batch with its full observation and harvest sets:
	// observations newest first, harvests in flush order.
	Detail(id uint) (*entities.Batch, []entities.Observation, []entities.Harvest, error)
}
