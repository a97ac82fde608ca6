package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skysports_backend/internals/features/classes/selected_classes/model"
)

type SelectedClassRepository struct {
	DB *gorm.DB
}

func NewSelectedClassRepository(db *gorm.DB) *SelectedClassRepository {
	return &SelectedClassRepository{DB: db}
}

func (r *SelectedClassRepository) Create(ctx context.Context, m *model.SelectedClassModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *SelectedClassRepository) ListByEmail(ctx context.Context, email string) ([]model.SelectedClassModel, error) {
	out := []model.SelectedClassModel{}
	err := r.DB.WithContext(ctx).Where("email = ?", email).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *SelectedClassRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.SelectedClassModel{})
	return res.RowsAffected, res.Error
}

// DeleteMany removes every listed cart line. Unknown ids are ignored.
func (r *SelectedClassRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).Where("id IN ?", ids).Delete(&model.SelectedClassModel{})
	return res.RowsAffected, res.Error
}
