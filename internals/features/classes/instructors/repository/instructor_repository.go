package repository

import (
	"context"

	"gorm.io/gorm"

	"skysports_backend/internals/features/classes/instructors/model"
)

type InstructorRepository struct {
	DB *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) *InstructorRepository {
	return &InstructorRepository{DB: db}
}

// ListPopular returns instructors with the most students first.
func (r *InstructorRepository) ListPopular(ctx context.Context) ([]model.InstructorModel, error) {
	out := []model.InstructorModel{}
	err := r.DB.WithContext(ctx).Order("students DESC").Find(&out).Error
	return out, err
}
