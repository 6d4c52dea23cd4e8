package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/database"
)

// Repository defines the user repository interface
type Repository interface {
	// Create creates a new user profile
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by their ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetByEmail retrieves a user by their email
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetRole retrieves just the role tag for a user
	GetRole(ctx context.Context, id uuid.UUID) (string, error)
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new user repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) Create(ctx context.Context, user *models.User) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", user.Email); err != nil {
			return err
		}
		if exists {
			return ErrEmailExists
		}

		query := `
            INSERT INTO users (id, email, full_name, password_hash, role, created_at, updated_at)
            VALUES (:id, :email, :full_name, :password_hash, :role, NOW(), NOW())`

		_, err := tx.NamedExecContext(ctx, query, user)
		return err
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return &user, err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Get(ctx, &user, "SELECT * FROM users WHERE email = $1", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return &user, err
}

func (r *repository) GetRole(ctx context.Context, id uuid.UUID) (string, error) {
	var role string
	err := r.Get(ctx, &role, "SELECT role FROM users WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	return role, err
}
