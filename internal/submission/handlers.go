package submission

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"certifytrack-go/internal/validation"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ReviewRequest carries a review verdict. Only approved and rejected are
// accepted; a submission cannot be moved back to pending through review.
type ReviewRequest struct {
	Status string `json:"status" validate:"required,reviewstatus"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.service.GetAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list submissions")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(overviews); err != nil {
		log.Error().Err(err).Msg("failed to encode submissions response")
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid submission id", http.StatusBadRequest)
		return
	}

	submission, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			http.Error(w, "Submission not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("submission_id", id.String()).Msg("failed to load submission")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(submission); err != nil {
		log.Error().Err(err).Msg("failed to encode submission response")
	}
}

func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid submission id", http.StatusBadRequest)
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	reviewed, err := h.service.Review(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmissionNotFound):
			http.Error(w, "Submission not found", http.StatusNotFound)
		case errors.Is(err, ErrNotAuthorized):
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		default:
			log.Error().
				Err(err).
				Str("submission_id", id.String()).
				Str("status", req.Status).
				Msg("failed to review submission")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reviewed); err != nil {
		log.Error().Err(err).Msg("failed to encode submission response")
	}
}
