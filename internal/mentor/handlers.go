package mentor

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

// InviteRequest carries a mentor invitation.
type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// InviteResponse returns the placeholder profile and its onboarding form
// link.
type InviteResponse struct {
	Mentor   *models.Mentor `json:"mentor"`
	FormLink string         `json:"form_link"`
}

// UpdateRequest carries the editable mentor profile fields.
type UpdateRequest struct {
	FullName           string   `json:"full_name"`
	Domain             string   `json:"domain"`
	Specialization     *string  `json:"specialization"`
	ExperienceYears    *int     `json:"experience_years" validate:"omitempty,min=0"`
	LinkedinURL        *string  `json:"linkedin_url" validate:"omitempty,url"`
	ProfilePhotoURL    *string  `json:"profile_photo_url" validate:"omitempty,url"`
	Bio                *string  `json:"bio"`
	AvailabilityStatus *string  `json:"availability_status"`
	Verified           bool     `json:"verified"`
	Rating             float64  `json:"rating" validate:"min=0,max=5"`
	ReviewCount        int      `json:"review_count" validate:"min=0"`
}

func (req *UpdateRequest) toModel() *models.Mentor {
	return &models.Mentor{
		FullName:           req.FullName,
		Domain:             req.Domain,
		Specialization:     req.Specialization,
		ExperienceYears:    req.ExperienceYears,
		LinkedinURL:        req.LinkedinURL,
		ProfilePhotoURL:    req.ProfilePhotoURL,
		Bio:                req.Bio,
		AvailabilityStatus: req.AvailabilityStatus,
		Verified:           req.Verified,
		Rating:             req.Rating,
		ReviewCount:        req.ReviewCount,
	}
}

func (h *Handler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	var req InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	mentor, formLink, err := h.service.Invite(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			http.Error(w, "Mentor email already exists", http.StatusConflict)
			return
		}
		log.Error().Err(err).Str("email", req.Email).Msg("failed to invite mentor")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(InviteResponse{Mentor: mentor, FormLink: formLink}); err != nil {
		log.Error().Err(err).Msg("failed to encode mentor response")
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	mentors, err := h.service.GetAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list mentors")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(mentors); err != nil {
		log.Error().Err(err).Msg("failed to encode mentors response")
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid mentor id", http.StatusBadRequest)
		return
	}

	mentor, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMentorNotFound) {
			http.Error(w, "Mentor not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("mentor_id", id.String()).Msg("failed to load mentor")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(mentor); err != nil {
		log.Error().Err(err).Msg("failed to encode mentor response")
	}
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid mentor id", http.StatusBadRequest)
		return
	}

	var req UpdateRequest
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
		if errors.Is(err, ErrMentorNotFound) {
			http.Error(w, "Mentor not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("mentor_id", id.String()).Msg("failed to update mentor")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Error().Err(err).Msg("failed to encode mentor response")
	}
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid mentor id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMentorNotFound) {
			http.Error(w, "Mentor not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("mentor_id", id.String()).Msg("failed to delete mentor")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
