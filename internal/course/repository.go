package course

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/database"
)

// Repository defines the course repository interface
type Repository interface {
	// Create inserts a course and its certificate template links
	Create(ctx context.Context, course *models.Course, certificateIDs []uuid.UUID) error
	// GetByID retrieves a single course with its certificate links
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	// GetAll retrieves all courses with joined certificate template names,
	// newest first
	GetAll(ctx context.Context) ([]models.Course, error)
	// Update writes course fields and optionally replaces certificate links
	Update(ctx context.Context, course *models.Course, certificateIDs []uuid.UUID) error
	// Delete removes a course by id
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new course repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) Create(ctx context.Context, course *models.Course, certificateIDs []uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
            INSERT INTO courses (
                id, title, description, category, features, mentors, tags,
                duration_days, difficulty, image_url, video_url, is_published,
                slug, created_by, created_at, updated_at
            ) VALUES (
                :id, :title, :description, :category, :features, :mentors, :tags,
                :duration_days, :difficulty, :image_url, :video_url, :is_published,
                :slug, :created_by, NOW(), NOW()
            )`

		if _, err := tx.NamedExecContext(ctx, query, course); err != nil {
			return err
		}

		return insertCertificateLinks(ctx, tx, course.ID, certificateIDs)
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	var course models.Course
	err := r.Get(ctx, &course, "SELECT * FROM courses WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	links, err := r.certificateLinks(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	course.Certificates = links[id]

	return &course, nil
}

func (r *repository) GetAll(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.Select(ctx, &courses, "SELECT * FROM courses ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}

	if len(courses) == 0 {
		return courses, nil
	}

	ids := make([]uuid.UUID, len(courses))
	for i := range courses {
		ids[i] = courses[i].ID
	}

	links, err := r.certificateLinks(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		courses[i].Certificates = links[courses[i].ID]
	}

	return courses, nil
}

func (r *repository) Update(ctx context.Context, course *models.Course, certificateIDs []uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
            UPDATE courses SET
                title = :title,
                description = :description,
                category = :category,
                features = :features,
                mentors = :mentors,
                tags = :tags,
                duration_days = :duration_days,
                difficulty = :difficulty,
                image_url = :image_url,
                video_url = :video_url,
                is_published = :is_published,
                slug = :slug,
                updated_at = NOW()
            WHERE id = :id`

		result, err := tx.NamedExecContext(ctx, query, course)
		if err != nil {
			return err
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrCourseNotFound
		}

		// nil means "leave links untouched"; an empty slice clears them
		if certificateIDs == nil {
			return nil
		}

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM course_certificates WHERE course_id = $1", course.ID); err != nil {
			return err
		}

		return insertCertificateLinks(ctx, tx, course.ID, certificateIDs)
	})
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.Exec(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCourseNotFound
	}

	return nil
}

func insertCertificateLinks(ctx context.Context, tx *sqlx.Tx, courseID uuid.UUID, certificateIDs []uuid.UUID) error {
	for _, certID := range certificateIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO course_certificates (course_id, certificate_id) VALUES ($1, $2)",
			courseID, certID); err != nil {
			return err
		}
	}
	return nil
}

// certificateLinks loads joined certificate template names for a set of
// courses, keyed by course id.
func (r *repository) certificateLinks(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID][]models.CourseCertificate, error) {
	query, args, err := sqlx.In(`
        SELECT cc.course_id, cc.certificate_id, ct.name
        FROM course_certificates cc
        JOIN certificate_templates ct ON ct.id = cc.certificate_id
        WHERE cc.course_id IN (?)`, courseIDs)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var links []models.CourseCertificate
	if err := r.Select(ctx, &links, query, args...); err != nil {
		return nil, err
	}

	byCourse := make(map[uuid.UUID][]models.CourseCertificate, len(courseIDs))
	for _, link := range links {
		byCourse[link.CourseID] = append(byCourse[link.CourseID], link)
	}
	return byCourse, nil
}
