package repositories

import (
	"context"
	"errors"
	"fmt"

	"budget-tracker/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	errNilUser           = errors.New("user cannot be nil")
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a repository for locally provisioned users
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &userRepository{db: db}
}

// Create inserts user. A second row for the same external id is reported as
// ErrUserAlreadyExists so concurrent first logins can recover.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil {
		return errNilUser
	}

	err := r.db.WithContext(ctx).Create(user).Error
	switch {
	case err == nil:
		return nil
	case isDuplicateKeyError(err):
		return ErrUserAlreadyExists
	default:
		return fmt.Errorf("failed to create user: %w", err)
	}
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	var user models.User

	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by external ID: %w", err)
	}

	return &user, nil
}
