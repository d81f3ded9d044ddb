package repositoryImp

import (
	"gorm.io/gorm"

	"mycolog/entities"
	"mycolog/pkg/batch/repository"
)

type batchRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BatchRepository { return &batchRepo{db} }

func (r *batchRepo) Create(b *entities.Batch) error { return r.db.Create(b).Error }

func (r *batchRepo) ListByUser(userID uint) ([]entities.Batch, error) {
	var out []entities.Batch
	if err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *batchRepo) ListByUsername(username string) ([]entities.Batch, error) {
	var out []entities.Batch
	err := r.db.
		Joins("JOIN users ON users.user_id = batches.user_id").
		Where("users.username = ?", username).
		Order("start_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *batchRepo) FindByID(id uint) (*entities.Batch, error) {
	var b entities.Batch
	if err := r.db.Where("batch_id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batchRepo) Detail(id uint) (*entities.Batch, []entities.Observation, []entities.Harvest, error) {
	b, err := r.FindByID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	obs := []entities.Observation{}
	if err := r.db.Where("batch_id = ?", id).Order("date DESC").Find(&obs).Error; err != nil {
		return nil, nil, nil, err
	}
	harvests := []entities.Harvest{}
	if err := r.db.Where("batch_id = ?", id).Order("flush_number ASC").Find(&harvests).Error; err != nil {
		return nil, nil, nil, err
	}
	return b, obs, harvests, nil
}
