package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusgig/campusgig/internal/db/models"
)

// UserRepository handles database operations for user entities
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user in the database.
// Returns an error if the email is already registered.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.GetByEmail(ctx, user.Email)
	if err == nil {
		return fmt.Errorf("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking email existence: %w", err)
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByEmail retrieves a user by their email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID
func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// List retrieves users sorted by rating, best rated first
func (r *UserRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Limit(opts.Limit).Offset(opts.Offset).
		Order("rating DESC, created_at DESC").
		Find(&users).Error
	return users, err
}

// UpdateBio updates a user's bio
func (r *UserRepository) UpdateBio(ctx context.Context, userID uint, bio string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("bio", bio)
	if res.Error != nil {
		return fmt.Errorf("failed to update bio: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user not found: %w", gorm.ErrRecordNotFound)
	}
	return nil
}
