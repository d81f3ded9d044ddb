package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mycolog/entities"
	"mycolog/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) FindOrCreate(username string) (*entities.User, error) {
	// single atomic insert-or-ignore, then read back; safe under concurrent
	// first requests for the same username
	u := entities.User{Username: username}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&u).Error; err != nil {
		return nil, err
	}
	return r.FindByUsername(username)
}

func (r *userRepo) FindByUsername(username string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
