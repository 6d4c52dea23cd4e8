package course

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

// CourseRequest carries the writable course fields for create and update.
type CourseRequest struct {
	Title          string      `json:"title" validate:"required"`
	Description    *string     `json:"description"`
	Category       *string     `json:"category"`
	Features       []string    `json:"features"`
	Mentors        []string    `json:"mentors"`
	Tags           []string    `json:"tags"`
	DurationDays   *int        `json:"duration_days" validate:"omitempty,min=1"`
	Difficulty     *string     `json:"difficulty" validate:"omitempty,difficulty"`
	ImageURL       *string     `json:"image_url" validate:"omitempty,url"`
	VideoURL       *string     `json:"video_url" validate:"omitempty,url"`
	IsPublished    bool        `json:"is_published"`
	CertificateIDs []uuid.UUID `json:"certificate_ids"`
}

func (req *CourseRequest) toModel() *models.Course {
	return &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Features:     req.Features,
		Mentors:      req.Mentors,
		Tags:         req.Tags,
		DurationDays: req.DurationDays,
		Difficulty:   req.Difficulty,
		ImageURL:     req.ImageURL,
		VideoURL:     req.VideoURL,
		IsPublished:  req.IsPublished,
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), req.toModel(), req.CertificateIDs)
	if err != nil {
		if errors.Is(err, ErrNotAuthorized) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		log.Error().Err(err).Str("title", req.Title).Msg("failed to create course")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Error().Err(err).Msg("failed to encode course response")
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.GetAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list courses")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if courses == nil {
		courses = []models.Course{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(courses); err != nil {
		log.Error().Err(err).Msg("failed to encode courses response")
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("course_id", id.String()).Msg("failed to load course")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(c); err != nil {
		log.Error().Err(err).Msg("failed to encode course response")
	}
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	var req CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.toModel(), req.CertificateIDs)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("course_id", id.String()).Msg("failed to update course")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Error().Err(err).Msg("failed to encode course response")
	}
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("course_id", id.String()).Msg("failed to delete course")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
