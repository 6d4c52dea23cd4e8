package internship

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

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

// InternshipRequest carries the writable internship fields for create and
// update.
type InternshipRequest struct {
	Title            string          `json:"title" validate:"required"`
	Description      *string         `json:"description"`
	LongDescription  *string         `json:"long_description"`
	DurationDays     *int            `json:"duration_days" validate:"omitempty,min=1"`
	StartDate        *time.Time      `json:"start_date"`
	EndDate          *time.Time      `json:"end_date"`
	PriceType        string          `json:"price_type" validate:"omitempty,oneof=free paid"`
	PriceValue       int             `json:"price_value" validate:"min=0"`
	Tags             []string        `json:"tags"`
	Mentors          []string        `json:"mentors"`
	Features         []string        `json:"features"`
	Requirements     []string        `json:"requirements"`
	Benefits         []string        `json:"benefits"`
	Location         *string         `json:"location"`
	Mode             string          `json:"mode" validate:"omitempty,oneof=online offline hybrid"`
	ApplicationLink  *string         `json:"application_link" validate:"omitempty,url"`
	MaxApplicants    *int            `json:"max_applicants" validate:"omitempty,min=1"`
	Status           string          `json:"status" validate:"omitempty,oneof=upcoming ongoing completed"`
	OrganizationName *string         `json:"organization_name"`
	Rating           float64         `json:"rating" validate:"min=0,max=5"`
	ReviewCount      int             `json:"review_count" validate:"min=0"`
	ImageURL         *string         `json:"image_url" validate:"omitempty,url"`
	IsPublished      bool            `json:"is_published"`
	CertTemplate     json.RawMessage `json:"certificate_template"`
}

func (req *InternshipRequest) toModel() *models.Internship {
	return &models.Internship{
		Title:            req.Title,
		Description:      req.Description,
		LongDescription:  req.LongDescription,
		DurationDays:     req.DurationDays,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		PriceType:        req.PriceType,
		PriceValue:       req.PriceValue,
		Tags:             req.Tags,
		Mentors:          req.Mentors,
		Features:         req.Features,
		Requirements:     req.Requirements,
		Benefits:         req.Benefits,
		Location:         req.Location,
		Mode:             req.Mode,
		ApplicationLink:  req.ApplicationLink,
		MaxApplicants:    req.MaxApplicants,
		Status:           req.Status,
		OrganizationName: req.OrganizationName,
		Rating:           req.Rating,
		ReviewCount:      req.ReviewCount,
		ImageURL:         req.ImageURL,
		IsPublished:      req.IsPublished,
		CertTemplate:     req.CertTemplate,
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req InternshipRequest
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
		if errors.Is(err, ErrNotAuthorized) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Str("title", req.Title).Msg("failed to create internship")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Error().Err(err).Msg("failed to encode internship response")
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	internships, err := h.service.GetAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list internships")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(internships); err != nil {
		log.Error().Err(err).Msg("failed to encode internships response")
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid internship id", http.StatusBadRequest)
		return
	}

	internship, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrInternshipNotFound) {
			http.Error(w, "Internship not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("internship_id", id.String()).Msg("failed to load internship")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(internship); err != nil {
		log.Error().Err(err).Msg("failed to encode internship response")
	}
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid internship id", http.StatusBadRequest)
		return
	}

	var req InternshipRequest
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
		if errors.Is(err, ErrInternshipNotFound) {
			http.Error(w, "Internship not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("internship_id", id.String()).Msg("failed to update internship")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Error().Err(err).Msg("failed to encode internship response")
	}
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid internship id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrInternshipNotFound) {
			http.Error(w, "Internship not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("internship_id", id.String()).Msg("failed to delete internship")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
