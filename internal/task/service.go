package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
)

// Service defines the internship task service interface
type Service interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByInternship(ctx context.Context, internshipID uuid.UUID) ([]models.Task, error)
	Update(ctx context.Context, id uuid.UUID, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new task service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	task.ID = uuid.New()
	if task.DifficultyLevel == "" {
		task.DifficultyLevel = models.DifficultyMedium
	}
	normalizeArrays(task)

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return s.repo.GetByID(ctx, task.ID)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByInternship(ctx context.Context, internshipID uuid.UUID) ([]models.Task, error) {
	tasks, err := s.repo.GetByInternship(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, task *models.Task) (*models.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.ID = existing.ID
	task.InternshipID = existing.InternshipID
	if task.DifficultyLevel == "" {
		task.DifficultyLevel = existing.DifficultyLevel
	}
	normalizeArrays(task)

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func normalizeArrays(task *models.Task) {
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
