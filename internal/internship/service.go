package internship

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/common/slug"
	usercontext "certifytrack-go/internal/context"
)

// Service defines the internship service interface
type Service interface {
	Create(ctx context.Context, internship *models.Internship) (*models.Internship, error)
	// GetByID returns the internship with its tasks, their submissions,
	// and freshly computed stats
	GetByID(ctx context.Context, id uuid.UUID) (*models.Internship, error)
	GetAll(ctx context.Context) ([]models.Internship, error)
	Update(ctx context.Context, id uuid.UUID, internship *models.Internship) (*models.Internship, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new internship service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, internship *models.Internship) (*models.Internship, error) {
	info := usercontext.GetUserFromContext(ctx)
	if info == nil {
		return nil, ErrNotAuthorized
	}

	internship.ID = uuid.New()
	internship.Slug = slug.Make(internship.Title)
	internship.CreatedBy = &info.ID
	applyDefaults(internship)
	normalizeArrays(internship)

	if err := s.repo.Create(ctx, internship); err != nil {
		return nil, fmt.Errorf("creating internship: %w", err)
	}
	return s.GetByID(ctx, internship.ID)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Internship, error) {
	internship, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.GetTasksWithSubmissions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading internship tasks: %w", err)
	}
	subs, err := s.repo.GetSubscriptions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading internship subscriptions: %w", err)
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	internship.Tasks = tasks
	stats := ComputeStats(tasks, subs)
	internship.Stats = &stats

	return internship, nil
}

func (s *service) GetAll(ctx context.Context) ([]models.Internship, error) {
	internships, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if internships == nil {
		internships = []models.Internship{}
	}
	return internships, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, internship *models.Internship) (*models.Internship, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	internship.ID = existing.ID
	internship.CreatedBy = existing.CreatedBy
	if internship.Title != "" && internship.Title != existing.Title {
		internship.Slug = slug.Make(internship.Title)
	} else {
		internship.Title = existing.Title
		internship.Slug = existing.Slug
	}
	applyDefaults(internship)
	normalizeArrays(internship)

	if err := s.repo.Update(ctx, internship); err != nil {
		return nil, fmt.Errorf("updating internship: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func applyDefaults(internship *models.Internship) {
	if internship.PriceType == "" {
		internship.PriceType = models.PriceFree
	}
	if internship.Mode == "" {
		internship.Mode = models.ModeOnline
	}
	if internship.Status == "" {
		internship.Status = models.InternshipUpcoming
	}
}

func normalizeArrays(internship *models.Internship) {
	if internship.Tags == nil {
		internship.Tags = []string{}
	}
	if internship.Mentors == nil {
		internship.Mentors = []string{}
	}
	if internship.Features == nil {
		internship.Features = []string{}
	}
	if internship.Requirements == nil {
		internship.Requirements = []string{}
	}
	if internship.Benefits == nil {
		internship.Benefits = []string{}
	}
}
