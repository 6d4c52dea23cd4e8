package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"certifytrack-go/internal/common/models"
)

type Service interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ValidateCredentials(ctx context.Context, email, password string) (*models.User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register creates a new operator account. Accounts registered through the
// admin panel get the admin role; the student-facing app creates users with
// the user role.
func (s *service) Register(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     strings.SplitN(email, "@", 2)[0], // default name from email
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		log.Error().
			Err(err).
			Str("email", user.Email).
			Msg("failed to create user")
		return nil, err
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Msg("new user registered")
	return user, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Info().
			Str("email", email).
			Msg("failed login attempt")
		return nil, ErrInvalidCredentials
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Msg("user logged in successfully")
	return user, nil
}
