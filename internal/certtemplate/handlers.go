package certtemplate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"certifytrack-go/internal/common/models"
	"certifytrack-go/internal/validation"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// TemplateRequest carries the writable certificate template fields.
type TemplateRequest struct {
	Name         string          `json:"name" validate:"required"`
	PreviewURL   *string         `json:"preview_url" validate:"omitempty,url"`
	TemplateJSON json.RawMessage `json:"template_json"`
	TemplateHTML *string         `json:"template_html"`
}

func (req *TemplateRequest) toModel() *models.CertificateTemplate {
	return &models.CertificateTemplate{
		Name:         req.Name,
		PreviewURL:   req.PreviewURL,
		TemplateJSON: req.TemplateJSON,
		TemplateHTML: req.TemplateHTML,
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), req.toModel())
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create certificate template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Error().Err(err).Msg("failed to encode template response")
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.GetAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list certificate templates")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(templates); err != nil {
		log.Error().Err(err).Msg("failed to encode templates response")
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid template id", http.StatusBadRequest)
		return
	}

	template, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("template_id", id.String()).Msg("failed to load certificate template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(template); err != nil {
		log.Error().Err(err).Msg("failed to encode template response")
	}
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid template id", http.StatusBadRequest)
		return
	}

	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.toModel())
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("template_id", id.String()).Msg("failed to update certificate template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Error().Err(err).Msg("failed to encode template response")
	}
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid template id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("template_id", id.String()).Msg("failed to delete certificate template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
