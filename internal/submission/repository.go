package submission

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/database"
)

// Repository defines the submission repository interface
type Repository interface {
	// GetAll returns every submission joined with its student, task and
	// internship context, newest first
	GetAll(ctx context.Context) ([]models.SubmissionOverview, error)
	// GetByID returns one submission with its full answer payload
	GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	// UpdateStatus writes the review outcome: status, review timestamp and
	// the reviewing admin. Keyed by id only; a re-review overwrites the
	// previous verdict.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, reviewerID uuid.UUID) error
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new submission repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) GetAll(ctx context.Context) ([]models.SubmissionOverview, error) {
	var overviews []models.SubmissionOverview
	err := r.Select(ctx, &overviews, `
        SELECT
            s.id, s.status, s.submitted_at, s.user_id, s.task_id,
            s.reviewed_at, s.reviewer_id,
            u.full_name AS student_name,
            t.title AS task_title,
            t.assigned_day,
            i.id AS internship_id,
            i.title AS internship_title
        FROM submissions s
        JOIN users u ON u.id = s.user_id
        JOIN tasks t ON t.id = s.task_id
        JOIN internships i ON i.id = t.internship_id
        ORDER BY s.submitted_at DESC`)
	return overviews, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.Get(ctx, &submission, "SELECT * FROM submissions WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, reviewerID uuid.UUID) error {
	result, err := r.Exec(ctx, `
        UPDATE submissions
        SET status = $1, reviewed_at = NOW(), reviewer_id = $2
        WHERE id = $3`, status, reviewerID, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}
