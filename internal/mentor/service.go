package mentor

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
)

const defaultDomain = "Not Specified"

// Service defines the mentor service interface
type Service interface {
	// Invite registers a mentor by email with placeholder profile fields
	// and returns the profile together with its onboarding form link
	Invite(ctx context.Context, email string) (*models.Mentor, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Mentor, error)
	GetAll(ctx context.Context) ([]models.Mentor, error)
	Update(ctx context.Context, id uuid.UUID, mentor *models.Mentor) (*models.Mentor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// FormLink builds the onboarding form path for a mentor email
	FormLink(email string) string
}

type service struct {
	repo Repository
}

// NewService creates a new mentor service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Invite(ctx context.Context, email string) (*models.Mentor, string, error) {
	mentor := &models.Mentor{
		ID:       uuid.New(),
		Email:    email,
		FullName: nameFromEmail(email),
		Domain:   defaultDomain,
	}

	if err := s.repo.Create(ctx, mentor); err != nil {
		return nil, "", fmt.Errorf("inviting mentor: %w", err)
	}

	created, err := s.repo.GetByID(ctx, mentor.ID)
	if err != nil {
		return nil, "", err
	}
	return created, s.FormLink(email), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Mentor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]models.Mentor, error) {
	mentors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if mentors == nil {
		mentors = []models.Mentor{}
	}
	return mentors, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, mentor *models.Mentor) (*models.Mentor, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mentor.ID = existing.ID
	mentor.Email = existing.Email
	if mentor.FullName == "" {
		mentor.FullName = existing.FullName
	}
	if mentor.Domain == "" {
		mentor.Domain = existing.Domain
	}

	if err := s.repo.Update(ctx, mentor); err != nil {
		return nil, fmt.Errorf("updating mentor: %w", err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) FormLink(email string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(email))
	return "/mentor/form/" + encoded
}

// nameFromEmail derives a placeholder display name from the email local
// part, until the mentor fills in their profile.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return email
	}
	return local
}
