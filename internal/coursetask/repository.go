package coursetask

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/database"
)

// Repository defines the course task repository interface
type Repository interface {
	Create(ctx context.Context, task *models.CourseTask) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CourseTask, error)
	// GetByCourse returns a course's tasks in curriculum order
	GetByCourse(ctx context.Context, courseID uuid.UUID) ([]models.CourseTask, error)
	Update(ctx context.Context, task *models.CourseTask) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new course task repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) Create(ctx context.Context, task *models.CourseTask) error {
	query := `
        INSERT INTO course_tasks (
            id, course_id, title, description, order_no, assigned_day,
            resource_links, reference_links, hints, attachment_urls,
            expected_output, submission_format, evaluation_criteria,
            estimated_time_hrs, difficulty_level, video_tutorial_url,
            tags, is_mandatory, created_at
        ) VALUES (
            :id, :course_id, :title, :description, :order_no, :assigned_day,
            :resource_links, :reference_links, :hints, :attachment_urls,
            :expected_output, :submission_format, :evaluation_criteria,
            :estimated_time_hrs, :difficulty_level, :video_tutorial_url,
            :tags, :is_mandatory, NOW()
        )`

	_, err := r.NamedExec(ctx, query, task)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.CourseTask, error) {
	var task models.CourseTask
	err := r.Get(ctx, &task, "SELECT * FROM course_tasks WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *repository) GetByCourse(ctx context.Context, courseID uuid.UUID) ([]models.CourseTask, error) {
	var tasks []models.CourseTask
	err := r.Select(ctx, &tasks, `
        SELECT * FROM course_tasks
        WHERE course_id = $1
        ORDER BY assigned_day, order_no NULLS LAST, created_at`, courseID)
	return tasks, err
}

func (r *repository) Update(ctx context.Context, task *models.CourseTask) error {
	query := `
        UPDATE course_tasks SET
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
	result, err := r.Exec(ctx, "DELETE FROM course_tasks WHERE id = $1", id)
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
