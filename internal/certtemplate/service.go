package certtemplate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
	usercontext "certifytrack-go/internal/context"
)

// Service defines the certificate template service interface
type Service interface {
	Create(ctx context.Context, template *models.CertificateTemplate) (*models.CertificateTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CertificateTemplate, error)
	GetAll(ctx context.Context) ([]models.CertificateTemplate, error)
	Update(ctx context.Context, id uuid.UUID, template *models.CertificateTemplate) (*models.CertificateTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new certificate template service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, template *models.CertificateTemplate) (*models.CertificateTemplate, error) {
	template.ID = uuid.New()
	if info := usercontext.GetUserFromContext(ctx); info != nil {
		template.CreatedBy = &info.ID
	}
	if len(template.TemplateJSON) == 0 {
		template.TemplateJSON = json.RawMessage("{}")
	}

	if err := s.repo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("creating certificate template: %w", err)
	}
	return s.repo.GetByID(ctx, template.ID)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.CertificateTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]models.CertificateTemplate, error) {
	templates, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []models.CertificateTemplate{}
	}
	return templates, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, template *models.CertificateTemplate) (*models.CertificateTemplate, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	template.ID = existing.ID
	if template.Name == "" {
		template.Name = existing.Name
	}
	if len(template.TemplateJSON) == 0 {
		template.TemplateJSON = existing.TemplateJSON
	}

	if err := s.repo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("updating certificate template: %w", err)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
