package internship

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/database"
)

// Repository defines the internship repository interface
type Repository interface {
	Create(ctx context.Context, internship *models.Internship) error
	// GetByID retrieves one internship row without nested data
	GetByID(ctx context.Context, id uuid.UUID) (*models.Internship, error)
	GetAll(ctx context.Context) ([]models.Internship, error)
	Update(ctx context.Context, internship *models.Internship) error
	Delete(ctx context.Context, id uuid.UUID) error

	// GetTasksWithSubmissions loads an internship's tasks in curriculum
	// order, each with its submissions attached
	GetTasksWithSubmissions(ctx context.Context, internshipID uuid.UUID) ([]models.Task, error)
	// GetSubscriptions loads an internship's enrollment rows
	GetSubscriptions(ctx context.Context, internshipID uuid.UUID) ([]models.Subscription, error)
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new internship repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) Create(ctx context.Context, internship *models.Internship) error {
	query := `
        INSERT INTO internships (
            id, title, description, long_description, duration_days,
            start_date, end_date, price_type, price_value, tags, mentors,
            features, requirements, benefits, location, mode,
            application_link, max_applicants, status, organization_name,
            rating, review_count, image_url, is_published, slug,
            certificate_template, created_by, created_at, updated_at
        ) VALUES (
            :id, :title, :description, :long_description, :duration_days,
            :start_date, :end_date, :price_type, :price_value, :tags, :mentors,
            :features, :requirements, :benefits, :location, :mode,
            :application_link, :max_applicants, :status, :organization_name,
            :rating, :review_count, :image_url, :is_published, :slug,
            :certificate_template, :created_by, NOW(), NOW()
        )`

	_, err := r.NamedExec(ctx, query, internship)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Internship, error) {
	var internship models.Internship
	err := r.Get(ctx, &internship, "SELECT * FROM internships WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInternshipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *repository) GetAll(ctx context.Context) ([]models.Internship, error) {
	var internships []models.Internship
	err := r.Select(ctx, &internships, "SELECT * FROM internships ORDER BY created_at DESC")
	return internships, err
}

func (r *repository) Update(ctx context.Context, internship *models.Internship) error {
	query := `
        UPDATE internships SET
            title = :title,
            description = :description,
            long_description = :long_description,
            duration_days = :duration_days,
            start_date = :start_date,
            end_date = :end_date,
            price_type = :price_type,
            price_value = :price_value,
            tags = :tags,
            mentors = :mentors,
            features = :features,
            requirements = :requirements,
            benefits = :benefits,
            location = :location,
            mode = :mode,
            application_link = :application_link,
            max_applicants = :max_applicants,
            status = :status,
            organization_name = :organization_name,
            rating = :rating,
            review_count = :review_count,
            image_url = :image_url,
            is_published = :is_published,
            slug = :slug,
            certificate_template = :certificate_template,
            updated_at = NOW()
        WHERE id = :id`

	result, err := r.NamedExec(ctx, query, internship)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.Exec(ctx, "DELETE FROM internships WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

func (r *repository) GetTasksWithSubmissions(ctx context.Context, internshipID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.Select(ctx, &tasks, `
        SELECT * FROM tasks
        WHERE internship_id = $1
        ORDER BY assigned_day, order_no NULLS LAST, created_at`, internshipID)
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		return tasks, nil
	}

	taskIDs := make([]uuid.UUID, len(tasks))
	for i := range tasks {
		taskIDs[i] = tasks[i].ID
	}

	query, args, err := sqlx.In(
		"SELECT * FROM submissions WHERE task_id IN (?) ORDER BY submitted_at", taskIDs)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var submissions []models.Submission
	if err := r.Select(ctx, &submissions, query, args...); err != nil {
		return nil, err
	}

	byTask := make(map[uuid.UUID][]models.Submission, len(tasks))
	for _, submission := range submissions {
		byTask[submission.TaskID] = append(byTask[submission.TaskID], submission)
	}
	for i := range tasks {
		tasks[i].Submissions = byTask[tasks[i].ID]
	}

	return tasks, nil
}

func (r *repository) GetSubscriptions(ctx context.Context, internshipID uuid.UUID) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.Select(ctx, &subs,
		"SELECT * FROM internship_subscriptions WHERE internship_id = $1", internshipID)
	return subs, err
}
