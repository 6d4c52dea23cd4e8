package uploader

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service Service
	maxSize int64
}

func NewHandler(service Service, maxSize int64) *Handler {
	return &Handler{
		service: service,
		maxSize: maxSize,
	}
}

// HandleUpload accepts a multipart image upload. The "folder" field files
// the asset under one entity's namespace; the response carries the public
// URL to store on that entity.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)

	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		http.Error(w, "File too large or malformed form", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	contentType := header.Header.Get("Content-Type")

	result, err := h.service.UploadImage(r.Context(), folder, header.Filename, contentType, header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidFolder):
			http.Error(w, "Invalid upload folder", http.StatusBadRequest)
		case errors.Is(err, ErrUnsupportedType):
			http.Error(w, "Unsupported file type", http.StatusUnsupportedMediaType)
		default:
			log.Error().
				Err(err).
				Str("folder", folder).
				Str("filename", header.Filename).
				Msg("failed to upload image")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error().Err(err).Msg("failed to encode upload response")
	}
}

func (h *Handler) HandleListFolder(w http.ResponseWriter, r *http.Request) {
	folder := chi.URLParam(r, "folder")

	files, err := h.service.ListFolder(r.Context(), folder)
	if err != nil {
		if errors.Is(err, ErrInvalidFolder) {
			http.Error(w, "Invalid upload folder", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("folder", folder).Msg("failed to list uploads")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(files); err != nil {
		log.Error().Err(err).Msg("failed to encode uploads response")
	}
}

// HandleServe streams a stored asset by its key.
func (h *Handler) HandleServe(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		http.Error(w, "Missing file key", http.StatusBadRequest)
		return
	}

	if err := h.service.Stream(r.Context(), key, w); err != nil {
		if errors.Is(err, ErrFileNotFound) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("key", key).Msg("failed to stream file")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		http.Error(w, "Missing file key", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), key); err != nil {
		if errors.Is(err, ErrFileNotFound) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("key", key).Msg("failed to delete file")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
