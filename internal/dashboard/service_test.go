package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certifytrack-go/internal/common/models"
)

// stubRepo returns fixed counts, with optional per-table failures.
type stubRepo struct {
	students, courses, internships         int
	tasks, courseTasks                     int
	submissions, courseSubmissions         int
	certificates                           int
	failTasks, failCourseTaskSubmissions   bool
}

var errCountFailed = errors.New("count failed")

func (s *stubRepo) CountStudents(context.Context) (int, error)    { return s.students, nil }
func (s *stubRepo) CountCourses(context.Context) (int, error)     { return s.courses, nil }
func (s *stubRepo) CountInternships(context.Context) (int, error) { return s.internships, nil }

func (s *stubRepo) CountTasks(context.Context) (int, error) {
	if s.failTasks {
		return 0, errCountFailed
	}
	return s.tasks, nil
}

func (s *stubRepo) CountCourseTasks(context.Context) (int, error) { return s.courseTasks, nil }
func (s *stubRepo) CountSubmissions(context.Context) (int, error) { return s.submissions, nil }

func (s *stubRepo) CountCourseTaskSubmissions(context.Context) (int, error) {
	if s.failCourseTaskSubmissions {
		return 0, errCountFailed
	}
	return s.courseSubmissions, nil
}

func (s *stubRepo) CountIssuedCertificates(context.Context) (int, error) {
	return s.certificates, nil
}

func TestService_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("sums task and submission variants", func(t *testing.T) {
		svc := NewService(&stubRepo{
			students:          12,
			courses:           3,
			internships:       2,
			tasks:             10,
			courseTasks:       5,
			submissions:       40,
			courseSubmissions: 7,
			certificates:      9,
		})

		stats, err := svc.GetStats(ctx)
		require.NoError(t, err)

		assert.Equal(t, &models.DashboardStats{
			TotalUsers:        12,
			TotalCourses:      3,
			TotalInternships:  2,
			TotalTasks:        15,
			TotalSubmissions:  47,
			TotalCertificates: 9,
		}, stats)
	})

	t.Run("empty platform yields zeros", func(t *testing.T) {
		stats, err := NewService(&stubRepo{}).GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &models.DashboardStats{}, stats)
	})

	t.Run("any failing count aborts the request", func(t *testing.T) {
		_, err := NewService(&stubRepo{failTasks: true}).GetStats(ctx)
		assert.ErrorIs(t, err, errCountFailed)

		_, err = NewService(&stubRepo{failCourseTaskSubmissions: true}).GetStats(ctx)
		assert.ErrorIs(t, err, errCountFailed)
	})
}
