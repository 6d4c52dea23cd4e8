package certtemplate

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/database"
)

// Repository defines the certificate template repository interface
type Repository interface {
	Create(ctx context.Context, template *models.CertificateTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CertificateTemplate, error)
	GetAll(ctx context.Context) ([]models.CertificateTemplate, error)
	Update(ctx context.Context, template *models.CertificateTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	*database.Repository
}

// NewRepository creates a new certificate template repository
func NewRepository(db *database.DB) Repository {
	return &repository{
		Repository: database.NewRepository(db),
	}
}

func (r *repository) Create(ctx context.Context, template *models.CertificateTemplate) error {
	query := `
        INSERT INTO certificate_templates (
            id, name, preview_url, template_json, template_html, created_by, created_at
        ) VALUES (
            :id, :name, :preview_url, :template_json, :template_html, :created_by, NOW()
        )`

	_, err := r.NamedExec(ctx, query, template)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.CertificateTemplate, error) {
	var template models.CertificateTemplate
	err := r.Get(ctx, &template, "SELECT * FROM certificate_templates WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *repository) GetAll(ctx context.Context) ([]models.CertificateTemplate, error) {
	var templates []models.CertificateTemplate
	err := r.Select(ctx, &templates,
		"SELECT * FROM certificate_templates ORDER BY created_at DESC")
	return templates, err
}

func (r *repository) Update(ctx context.Context, template *models.CertificateTemplate) error {
	query := `
        UPDATE certificate_templates SET
            name = :name,
            preview_url = :preview_url,
            template_json = :template_json,
            template_html = :template_html
        WHERE id = :id`

	result, err := r.NamedExec(ctx, query, template)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.Exec(ctx, "DELETE FROM certificate_templates WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTemplateNotFound
	}
	return nil
}
