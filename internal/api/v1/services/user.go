package services

import (
	"context"
	"errors"

	"github.com/campusgig/campusgig/internal/apperr"
	"github.com/campusgig/campusgig/internal/auth"
	"github.com/campusgig/campusgig/internal/db/models"
	"github.com/campusgig/campusgig/internal/db/repos"
)

// ErrInvalidCredentials is returned by Login for a wrong email or password
var ErrInvalidCredentials = errors.New("invalid email or password")

// User provides business logic for user operations
type User struct {
	repo      *repos.UserRepository
	jwtSecret []byte
}

// NewUserService creates a new user service instance
func NewUserService(repo *repos.UserRepository, jwtSecret []byte) *User {
	return &User{repo: repo, jwtSecret: jwtSecret}
}

// Register creates a new user and issues a token for it
func (s *User) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if err := auth.ValidatePassword(password); err != nil {
		return nil, "", apperr.Validation(err.Error())
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", apperr.Conflict("user already exists")
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, auth.DefaultTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user by email and password and issues a token
func (s *User) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := auth.CheckPassword(password, user.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, auth.DefaultTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetByID retrieves a user by id
func (s *User) GetByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

// List retrieves users, best rated first
func (s *User) List(ctx context.Context, opts *models.ListOptions) ([]models.User, error) {
	return s.repo.List(ctx, opts)
}

// UpdateBio updates the caller's bio and returns the refreshed user
func (s *User) UpdateBio(ctx context.Context, userID uint, bio string) (*models.User, error) {
	if err := s.repo.UpdateBio(ctx, userID, bio); err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return s.GetByID(ctx, userID)
}
