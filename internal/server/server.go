package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"

	"certifytrack-go/internal/auth"
	"certifytrack-go/internal/certtemplate"
	"certifytrack-go/internal/config"
	"certifytrack-go/internal/course"
	"certifytrack-go/internal/coursetask"
	"certifytrack-go/internal/dashboard"
	"certifytrack-go/internal/database"
	"certifytrack-go/internal/internship"
	"certifytrack-go/internal/mentor"
	"certifytrack-go/internal/storage"
	"certifytrack-go/internal/submission"
	"certifytrack-go/internal/task"
	"certifytrack-go/internal/uploader"
	"certifytrack-go/internal/user"
)

// Server represents the HTTP server and its dependencies
type Server struct {
	config      *config.Config
	db          *database.DB
	authService auth.Service

	authHandler       *auth.Handler
	courseHandler     *course.Handler
	courseTaskHandler *coursetask.Handler
	internshipHandler *internship.Handler
	taskHandler       *task.Handler
	submissionHandler *submission.Handler
	mentorHandler     *mentor.Handler
	templateHandler   *certtemplate.Handler
	dashboardHandler  *dashboard.Handler
	uploadHandler     *uploader.Handler
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, db *database.DB) (*Server, error) {
	// Repositories
	userRepo := user.NewRepository(db)
	courseRepo := course.NewRepository(db)
	courseTaskRepo := coursetask.NewRepository(db)
	internshipRepo := internship.NewRepository(db)
	taskRepo := task.NewRepository(db)
	submissionRepo := submission.NewRepository(db)
	mentorRepo := mentor.NewRepository(db)
	templateRepo := certtemplate.NewRepository(db)
	dashboardRepo := dashboard.NewRepository(db)

	// Storage
	storageProvider, err := storage.NewProvider(cfg.Storage, cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("initializing storage provider: %w", err)
	}

	// Services
	authService := auth.NewService(cfg.Secret)
	userService := user.NewService(userRepo)
	courseService := course.NewService(courseRepo)
	courseTaskService := coursetask.NewService(courseTaskRepo)
	internshipService := internship.NewService(internshipRepo)
	taskService := task.NewService(taskRepo)
	submissionService := submission.NewService(submissionRepo)
	mentorService := mentor.NewService(mentorRepo)
	templateService := certtemplate.NewService(templateRepo)
	dashboardService := dashboard.NewService(dashboardRepo)
	uploadService := uploader.NewService(storageProvider)

	return &Server{
		config:      cfg,
		db:          db,
		authService: authService,

		authHandler:       auth.NewHandler(userService, authService),
		courseHandler:     course.NewHandler(courseService),
		courseTaskHandler: coursetask.NewHandler(courseTaskService),
		internshipHandler: internship.NewHandler(internshipService),
		taskHandler:       task.NewHandler(taskService),
		submissionHandler: submission.NewHandler(submissionService),
		mentorHandler:     mentor.NewHandler(mentorService),
		templateHandler:   certtemplate.NewHandler(templateService),
		dashboardHandler:  dashboard.NewHandler(dashboardService),
		uploadHandler:     uploader.NewHandler(uploadService, cfg.UploadMaxSize),
	}, nil
}

// Start builds the HTTP server around the registered routes
func (s *Server) Start() (*http.Server, error) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info().
		Int("port", s.config.Port).
		Str("env", s.config.Env).
		Msg("starting server")

	return srv, nil
}

// sendJSON sends a JSON response with consistent formatting
func (s *Server) sendJSON(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: success,
		Message: message,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("error encoding JSON response")
	}
}
