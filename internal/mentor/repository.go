package mentor

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/database"
)

// Repository defines the mentor repository interface
type Repository interface {
	Create(ctx context.Context, mentor *models.Mentor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Mentor, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	GetAll(ctx context.Context) ([]models.Mentor, error)
	Update(ctx context.Context, mentor *models.Mentor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new mentor repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) Create(ctx context.Context, mentor *models.Mentor) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		var exists bool
		err := tx.GetContext(ctx, &exists,
			"SELECT EXISTS(SELECT 1 FROM mentors WHERE email = $1)", mentor.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailExists
		}

		query := `
            INSERT INTO mentors (
                id, full_name, email, domain, specialization, experience_years,
                linkedin_url, profile_photo_url, bio, availability_status,
                joined_on, verified, rating, review_count
            ) VALUES (
                :id, :full_name, :email, :domain, :specialization, :experience_years,
                :linkedin_url, :profile_photo_url, :bio, :availability_status,
                NOW(), :verified, :rating, :review_count
            )`

		_, err = tx.NamedExecContext(ctx, query, mentor)
		return err
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.Get(ctx, &mentor, "SELECT * FROM mentors WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMentorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.Get(ctx, &mentor, "SELECT * FROM mentors WHERE email = $1", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMentorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

func (r *repository) GetAll(ctx context.Context) ([]models.Mentor, error) {
	var mentors []models.Mentor
	err := r.Select(ctx, &mentors, "SELECT * FROM mentors ORDER BY joined_on DESC")
	return mentors, err
}

func (r *repository) Update(ctx context.Context, mentor *models.Mentor) error {
	query := `
        UPDATE mentors SET
            full_name = :full_name,
            domain = :domain,
            specialization = :specialization,
            experience_years = :experience_years,
            linkedin_url = :linkedin_url,
            profile_photo_url = :profile_photo_url,
            bio = :bio,
            availability_status = :availability_status,
            last_active = :last_active,
            verified = :verified,
            rating = :rating,
            review_count = :review_count
        WHERE id = :id`

	result, err := r.NamedExec(ctx, query, mentor)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMentorNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.Exec(ctx, "DELETE FROM mentors WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMentorNotFound
	}
	return nil
}
