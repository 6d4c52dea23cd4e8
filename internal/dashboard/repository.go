package dashboard

import (
	"context"

	"certifytrack-go/internal/database"
)

// Repository defines the dashboard count queries
type Repository interface {
	// CountStudents counts accounts with the student role; admin
	// operator accounts are excluded from the dashboard total
	CountStudents(ctx context.Context) (int, error)
	CountCourses(ctx context.Context) (int, error)
	CountInternships(ctx context.Context) (int, error)
	CountTasks(ctx context.Context) (int, error)
	CountCourseTasks(ctx context.Context) (int, error)
	CountSubmissions(ctx context.Context) (int, error)
	CountCourseTaskSubmissions(ctx context.Context) (int, error)
	CountIssuedCertificates(ctx context.Context) (int, error)
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new dashboard repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) count(ctx context.Context, query string) (int, error) {
	var n int
	err := r.Get(ctx, &n, query)
	return n, err
}

func (r *repository) CountStudents(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM users WHERE role = 'user'")
}

func (r *repository) CountCourses(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM courses")
}

func (r *repository) CountInternships(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM internships")
}

func (r *repository) CountTasks(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM tasks")
}

func (r *repository) CountCourseTasks(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM course_tasks")
}

func (r *repository) CountSubmissions(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM submissions")
}

func (r *repository) CountCourseTaskSubmissions(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM course_task_submissions")
}

func (r *repository) CountIssuedCertificates(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM issued_certificates")
}
