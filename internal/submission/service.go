package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
	usercontext "certifytrack-go/internal/context"
)

// Service defines the submission review service interface
type Service interface {
	GetAll(ctx context.Context) ([]models.SubmissionOverview, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	// Review records an approve or reject verdict, stamping the review
	// time and the reviewing admin from the request context
	Review(ctx context.Context, id uuid.UUID, status string) (*models.Submission, error)
}

type service struct {
	repo Repository
}

// NewService creates a new submission service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]models.SubmissionOverview, error) {
	overviews, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if overviews == nil {
		overviews = []models.SubmissionOverview{}
	}
	return overviews, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Review(ctx context.Context, id uuid.UUID, status string) (*models.Submission, error) {
	info := usercontext.GetUserFromContext(ctx)
	if info == nil {
		return nil, ErrNotAuthorized
	}

	if err := s.repo.UpdateStatus(ctx, id, status, info.ID); err != nil {
		return nil, fmt.Errorf("reviewing submission: %w", err)
	}
	return s.repo.GetByID(ctx, id)
}
