package repository

import (
	"context"

	"gorm.io/gorm"

	"skysports_backend/internals/features/classes/sports/model"
)

type SportRepository struct {
	DB *gorm.DB
}

func NewSportRepository(db *gorm.DB) *SportRepository {
	return &SportRepository{DB: db}
}

func (r *SportRepository) List(ctx context.Context) ([]model.SportModel, error) {
	out := []model.SportModel{}
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}
