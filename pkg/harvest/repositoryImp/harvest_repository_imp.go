package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mycolog/entities"
	"mycolog/pkg/harvest/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Upsert(h *entities.Harvest) (*entities.Harvest, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "batch_id"}, {Name: "flush_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"flush_yield_kg",
			"total_batch_yield_kg",
			"date",
		}),
	}).Create(h).Error
	if err != nil {
		return nil, err
	}
	var stored entities.Harvest
	if err := r.db.Where("batch_id = ? AND flush_number = ?", h.BatchID, h.FlushNumber).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *harvestRepo) ListByBatch(batchID uint) ([]entities.Harvest, error) {
	var out []entities.Harvest
	if err := r.db.Where("batch_id = ?", batchID).Order("flush_number ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
