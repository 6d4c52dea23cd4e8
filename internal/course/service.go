package course

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/common/slug"
	usercontext "certifytrack-go/internal/context"
)

// Service defines the course service interface
type Service interface {
	Create(ctx context.Context, course *models.Course, certificateIDs []uuid.UUID) (*models.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetAll(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, id uuid.UUID, course *models.Course, certificateIDs []uuid.UUID) (*models.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new course service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, course *models.Course, certificateIDs []uuid.UUID) (*models.Course, error) {
	info := usercontext.GetUserFromContext(ctx)
	if info == nil {
		return nil, ErrNotAuthorized
	}

	course.ID = uuid.New()
	course.Slug = slug.Make(course.Title)
	course.CreatedBy = &info.ID
	normalizeArrays(course)

	if err := s.repo.Create(ctx, course, certificateIDs); err != nil {
		return nil, fmt.Errorf("creating course: %w", err)
	}

	return s.repo.GetByID(ctx, course.ID)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]models.Course, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, course *models.Course, certificateIDs []uuid.UUID) (*models.Course, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.ID = existing.ID
	course.CreatedBy = existing.CreatedBy
	if course.Title != "" && course.Title != existing.Title {
		course.Slug = slug.Make(course.Title)
	} else {
		course.Title = existing.Title
		course.Slug = existing.Slug
	}
	normalizeArrays(course)

	if err := s.repo.Update(ctx, course, certificateIDs); err != nil {
		return nil, fmt.Errorf("updating course: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// normalizeArrays replaces nil array fields with empty slices so the row
// never stores NULL and responses never render null.
func normalizeArrays(course *models.Course) {
	if course.Features == nil {
		course.Features = []string{}
	}
	if course.Mentors == nil {
		course.Mentors = []string{}
	}
	if course.Tags == nil {
		course.Tags = []string{}
	}
}
