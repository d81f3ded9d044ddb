package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mycolog/entities"
	"mycolog/pkg/observation/repository"
)

type obsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ObservationRepository { return &obsRepo{db} }

func (r *obsRepo) Upsert(o *entities.Observation) (*entities.Observation, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "batch_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ambient_temperature_celsius",
			"relative_humidity_percent",
			"co2_level",
			"light_hours_per_day",
		}),
	}).Create(o).Error
	if err != nil {
		return nil, err
	}
	// re-read: on the update path the id gorm reports is not the stored row's
	var stored entities.Observation
	if err := r.db.Where("batch_id = ? AND date = ?", o.BatchID, o.Date).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *obsRepo) ListByBatch(batchID uint) ([]entities.Observation, error) {
	var out []entities.Observation
	if err := r.db.Where("batch_id = ?", batchID).Order("date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *obsRepo) ByDateAsc(batchID uint) ([]entities.Observation, error) {
	var out []entities.Observation
	if err := r.db.Where("batch_id = ?", batchID).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
