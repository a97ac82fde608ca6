package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skysports_backend/internals/constants"
	"skysports_backend/internals/features/classes/top_classes/model"
)

type TopClassRepository struct {
	DB *gorm.DB
}

func NewTopClassRepository(db *gorm.DB) *TopClassRepository {
	return &TopClassRepository{DB: db}
}

func (r *TopClassRepository) Create(ctx context.Context, m *model.TopClassModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

// List returns every class, most enrolled first.
func (r *TopClassRepository) List(ctx context.Context) ([]model.TopClassModel, error) {
	out := []model.TopClassModel{}
	err := r.DB.WithContext(ctx).Order("student_number DESC").Find(&out).Error
	return out, err
}

func (r *TopClassRepository) ListByEmail(ctx context.Context, email string) ([]model.TopClassModel, error) {
	out := []model.TopClassModel{}
	err := r.DB.WithContext(ctx).Where("email = ?", email).Order("created_at DESC").Find(&out).Error
	return out, err
}

// FindByID returns nil, nil when missing.
func (r *TopClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TopClassModel, error) {
	var m model.TopClassModel
	err := r.DB.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert updates fields on id, or inserts a new row with that id when absent.
// inserted reports which branch ran.
func (r *TopClassRepository) Upsert(ctx context.Context, id uuid.UUID, fields map[string]any) (modified int64, inserted bool, err error) {
	res := r.DB.WithContext(ctx).Model(&model.TopClassModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected > 0 {
		return res.RowsAffected, false, nil
	}

	m := model.TopClassModel{ID: id, Status: constants.ClassStatusPending}
	if v, ok := fields["sport_name"].(string); ok {
		m.SportName = v
	}
	if v, ok := fields["available_seats"].(int); ok {
		m.AvailableSeats = v
	}
	if v, ok := fields["price"].(float64); ok {
		m.Price = v
	}
	if v, ok := fields["picture"].(string); ok {
		m.Picture = v
	}
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, false, err
	}
	return 0, true, nil
}

// UpdateStatus returns 0 when no class has id.
func (r *TopClassRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, feedBack *string) (int64, error) {
	fields := map[string]any{"status": status, "feed_back": feedBack}
	res := r.DB.WithContext(ctx).Model(&model.TopClassModel{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
