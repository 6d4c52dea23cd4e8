package dashboard

import (
	"context"
	"fmt"

	"certifytrack-go/internal/common/models"
)

// Service defines the dashboard service interface
type Service interface {
	// GetStats collects the platform-wide totals. Any failing count
	// aborts the whole request; partial dashboards are never served.
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type service struct {
	repo Repository
}

// NewService creates a new dashboard service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	users, err := s.repo.CountStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting students: %w", err)
	}

	courses, err := s.repo.CountCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting courses: %w", err)
	}

	internships, err := s.repo.CountInternships(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting internships: %w", err)
	}

	tasks, err := s.repo.CountTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting tasks: %w", err)
	}

	courseTasks, err := s.repo.CountCourseTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting course tasks: %w", err)
	}

	submissions, err := s.repo.CountSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting submissions: %w", err)
	}

	courseSubmissions, err := s.repo.CountCourseTaskSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting course task submissions: %w", err)
	}

	certificates, err := s.repo.CountIssuedCertificates(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting issued certificates: %w", err)
	}

	return &models.DashboardStats{
		TotalUsers:        users,
		TotalCourses:      courses,
		TotalInternships:  internships,
		TotalTasks:        tasks + courseTasks,
		TotalSubmissions:  submissions + courseSubmissions,
		TotalCertificates: certificates,
	}, nil
}
