package task

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/database"
)

// Repository defines the internship task repository interface
type Repository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// GetByInternship returns an internship's tasks in curriculum order
	GetByInternship(ctx context.Context, internshipID uuid.UUID) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new task repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) Create(ctx context.Context, task *models.Task) error {
	query := `
        INSERT INTO tasks (
            id, internship_id, title, description, order_no, assigned_day,
            resource_links, reference_links, hints, attachment_urls,
            expected_output, submission_format, evaluation_criteria,
            estimated_time_hrs, difficulty_level, video_tutorial_url,
            tags, is_mandatory, created_at
        ) VALUES (
            :id, :internship_id, :title, :description, :order_no, :assigned_day,
            :resource_links, :reference_links, :hints, :attachment_urls,
            :expected_output, :submission_format, :evaluation_criteria,
            :estimated_time_hrs, :difficulty_level, :video_tutorial_url,
            :tags, :is_mandatory, NOW()
        )`

	_, err := r.NamedExec(ctx, query, task)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.Get(ctx, &task, "SELECT * FROM tasks WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *repository) GetByInternship(ctx context.Context, internshipID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.Select(ctx, &tasks, `
        SELECT * FROM tasks
        WHERE internship_id = $1
        ORDER BY assigned_day, order_no NULLS LAST, created_at`, internshipID)
	return tasks, err
}

func (r *repository) Update(ctx context.Context, task *models.Task) error {
	query := `
        UPDATE tasks SET
            title = :title,
            description = :description,
            order_no = :order_no,
            assigned_day = :assigned_day,
            resource_links = :resource_links,
            reference_links = :reference_links,
            hints = :hints,
            attachment_urls = :attachment_urls,
            expected_output = :expected_output,
            submission_format = :submission_format,
            evaluation_criteria = :evaluation_criteria,
            estimated_time_hrs = :estimated_time_hrs,
            difficulty_level = :difficulty_level,
            video_tutorial_url = :video_tutorial_url,
            tags = :tags,
            is_mandatory = :is_mandatory
        WHERE id = :id`

	result, err := r.NamedExec(ctx, query, task)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}
