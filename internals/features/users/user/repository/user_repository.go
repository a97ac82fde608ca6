package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skysports_backend/internals/features/users/user/dto"
	"skysports_backend/internals/features/users/user/model"
)

var ErrEmailTaken = errors.New("email already registered")

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByEmail returns nil, nil when no user has that email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	return first(r.DB.WithContext(ctx).Where("email = ?", email))
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	return first(r.DB.WithContext(ctx).Where("id = ?", id))
}

// FindOne matches every non-empty filter field. An empty filter returns the
// oldest user, like an unfiltered findOne.
func (r *UserRepository) FindOne(ctx context.Context, f dto.UserFilter) (*model.UserModel, error) {
	q := r.DB.WithContext(ctx)
	if f.Email != "" {
		q = q.Where("email = ?", f.Email)
	}
	if f.Name != "" {
		q = q.Where("name = ?", f.Name)
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	return first(q.Order("created_at ASC"))
}

func (r *UserRepository) List(ctx context.Context) ([]model.UserModel, error) {
	users := []model.UserModel{}
	if err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create maps a unique violation on email to ErrEmailTaken, which covers two
// sign-ups racing past the existence check.
func (r *UserRepository) Create(ctx context.Context, u *model.UserModel) error {
	err := r.DB.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

// UpdateRole returns matched/modified counts; 0,0 means no such user.
func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (matched, modified int64, err error) {
	u, err := r.FindByID(ctx, id)
	if err != nil || u == nil {
		return 0, 0, err
	}
	if u.Role == role {
		return 1, 0, nil
	}
	res := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return 0, 0, res.Error
	}
	return 1, res.RowsAffected, nil
}

// RoleByEmail is the role lookup behind the authorization gate.
func (r *UserRepository) RoleByEmail(ctx context.Context, email string) (string, bool, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return "", false, err
	}
	if u == nil {
		return "", false, nil
	}
	return u.Role, true, nil
}

func first(q *gorm.DB) (*model.UserModel, error) {
	var u model.UserModel
	err := q.Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
