package task

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

// TaskRequest carries the writable task fields. IsMandatory is a pointer so
// an omitted field defaults to true instead of false.
type TaskRequest struct {
	Title              string   `json:"title" validate:"required"`
	Description        *string  `json:"description"`
	OrderNo            *int     `json:"order_no" validate:"omitempty,min=0"`
	AssignedDay        int      `json:"assigned_day" validate:"min=0"`
	ResourceLinks      []string `json:"resource_links"`
	ReferenceLinks     []string `json:"reference_links"`
	Hints              []string `json:"hints"`
	AttachmentURLs     []string `json:"attachment_urls"`
	ExpectedOutput     *string  `json:"expected_output"`
	SubmissionFormat   *string  `json:"submission_format"`
	EvaluationCriteria []string `json:"evaluation_criteria"`
	EstimatedTimeHrs   *float64 `json:"estimated_time_hrs" validate:"omitempty,min=0"`
	DifficultyLevel    string   `json:"difficulty_level" validate:"omitempty,difficulty"`
	VideoTutorialURL   *string  `json:"video_tutorial_url" validate:"omitempty,url"`
	Tags               []string `json:"tags"`
	IsMandatory        *bool    `json:"is_mandatory"`
}

func (req *TaskRequest) toModel(internshipID uuid.UUID) *models.Task {
	mandatory := true
	if req.IsMandatory != nil {
		mandatory = *req.IsMandatory
	}

	return &models.Task{
		InternshipID:       internshipID,
		Title:              req.Title,
		Description:        req.Description,
		OrderNo:            req.OrderNo,
		AssignedDay:        req.AssignedDay,
		ResourceLinks:      req.ResourceLinks,
		ReferenceLinks:     req.ReferenceLinks,
		Hints:              req.Hints,
		AttachmentURLs:     req.AttachmentURLs,
		ExpectedOutput:     req.ExpectedOutput,
		SubmissionFormat:   req.SubmissionFormat,
		EvaluationCriteria: req.EvaluationCriteria,
		EstimatedTimeHrs:   req.EstimatedTimeHrs,
		DifficultyLevel:    req.DifficultyLevel,
		VideoTutorialURL:   req.VideoTutorialURL,
		Tags:               req.Tags,
		IsMandatory:        mandatory,
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	internshipID, err := uuid.Parse(chi.URLParam(r, "internshipID"))
	if err != nil {
		http.Error(w, "Invalid internship id", http.StatusBadRequest)
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), req.toModel(internshipID))
	if err != nil {
		log.Error().Err(err).Str("internship_id", internshipID.String()).Msg("failed to create task")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Error().Err(err).Msg("failed to encode task response")
	}
}

func (h *Handler) HandleListByInternship(w http.ResponseWriter, r *http.Request) {
	internshipID, err := uuid.Parse(chi.URLParam(r, "internshipID"))
	if err != nil {
		http.Error(w, "Invalid internship id", http.StatusBadRequest)
		return
	}

	tasks, err := h.service.GetByInternship(r.Context(), internshipID)
	if err != nil {
		log.Error().Err(err).Str("internship_id", internshipID.String()).Msg("failed to list tasks")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tasks); err != nil {
		log.Error().Err(err).Msg("failed to encode tasks response")
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}

	t, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("task_id", id.String()).Msg("failed to load task")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(t); err != nil {
		log.Error().Err(err).Msg("failed to encode task response")
	}
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.toModel(uuid.Nil))
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("task_id", id.String()).Msg("failed to update task")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Error().Err(err).Msg("failed to encode task response")
	}
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("task_id", id.String()).Msg("failed to delete task")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
