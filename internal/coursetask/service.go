package coursetask

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
)

// Service defines the course task service interface
type Service interface {
	Create(ctx context.Context, task *models.CourseTask) (*models.CourseTask, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CourseTask, error)
	GetByCourse(ctx context.Context, courseID uuid.UUID) ([]models.CourseTask, error)
	Update(ctx context.Context, id uuid.UUID, task *models.CourseTask) (*models.CourseTask, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new course task service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, task *models.CourseTask) (*models.CourseTask, error) {
	task.ID = uuid.New()
	if task.DifficultyLevel == "" {
		task.DifficultyLevel = models.DifficultyMedium
	}
	normalizeArrays(task)

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating course task: %w", err)
	}
	return s.repo.GetByID(ctx, task.ID)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.CourseTask, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByCourse(ctx context.Context, courseID uuid.UUID) ([]models.CourseTask, error) {
	tasks, err := s.repo.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.CourseTask{}
	}
	return tasks, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, task *models.CourseTask) (*models.CourseTask, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.ID = existing.ID
	task.CourseID = existing.CourseID
	if task.DifficultyLevel == "" {
		task.DifficultyLevel = existing.DifficultyLevel
	}
	normalizeArrays(task)

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating course task: %w", err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func normalizeArrays(task *models.CourseTask) {
	if task.ResourceLinks == nil {
		task.ResourceLinks = []string{}
	}
	if task.ReferenceLinks == nil {
		task.ReferenceLinks = []string{}
	}
	if task.Hints == nil {
		task.Hints = []string{}
	}
	if task.AttachmentURLs == nil {
		task.AttachmentURLs = []string{}
	}
	if task.EvaluationCriteria == nil {
		task.EvaluationCriteria = []string{}
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
}
