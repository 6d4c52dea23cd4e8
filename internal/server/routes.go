package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	tokenAuth := s.authService.GetAuth()
	r.Use(jwtauth.Verifier(tokenAuth))

	if s.config.Env == "dev" || s.config.Env == "development" {
		r.Use(middleware.NoCache)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Group(func(r chi.Router) {
		r.Post("/auth/signup", s.authHandler.HandleSignUp)
		r.Post("/auth/signin", s.authHandler.HandleSignIn)

		r.Get("/health", s.healthHandler)

		// Stored assets are public; URLs land on course and internship pages
		r.Get("/uploads/*", s.uploadHandler.HandleServe)
	})

	// Protected admin routes
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Authenticator(tokenAuth))
		r.Use(s.RequireAdmin)

		r.Post("/auth/signout", s.authHandler.HandleSignOut)
		r.Get("/auth/me", s.authHandler.HandleCurrentUser)

		r.Route("/api", func(r chi.Router) {
			r.Get("/dashboard/stats", s.dashboardHandler.HandleStats)

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", s.courseHandler.HandleList)
				r.Post("/", s.courseHandler.HandleCreate)
				r.Get("/{id}", s.courseHandler.HandleGet)
				r.Put("/{id}", s.courseHandler.HandleUpdate)
				r.Delete("/{id}", s.courseHandler.HandleDelete)

				r.Get("/{courseID}/tasks", s.courseTaskHandler.HandleListByCourse)
				r.Post("/{courseID}/tasks", s.courseTaskHandler.HandleCreate)
			})

			r.Route("/course-tasks", func(r chi.Router) {
				r.Get("/{id}", s.courseTaskHandler.HandleGet)
				r.Put("/{id}", s.courseTaskHandler.HandleUpdate)
				r.Delete("/{id}", s.courseTaskHandler.HandleDelete)
			})

			r.Route("/internships", func(r chi.Router) {
				r.Get("/", s.internshipHandler.HandleList)
				r.Post("/", s.internshipHandler.HandleCreate)
				r.Get("/{id}", s.internshipHandler.HandleGet)
				r.Put("/{id}", s.internshipHandler.HandleUpdate)
				r.Delete("/{id}", s.internshipHandler.HandleDelete)

				r.Get("/{internshipID}/tasks", s.taskHandler.HandleListByInternship)
				r.Post("/{internshipID}/tasks", s.taskHandler.HandleCreate)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/{id}", s.taskHandler.HandleGet)
				r.Put("/{id}", s.taskHandler.HandleUpdate)
				r.Delete("/{id}", s.taskHandler.HandleDelete)
			})

			r.Route("/submissions", func(r chi.Router) {
				r.Get("/", s.submissionHandler.HandleList)
				r.Get("/{id}", s.submissionHandler.HandleGet)
				r.Patch("/{id}/review", s.submissionHandler.HandleReview)
			})

			r.Route("/mentors", func(r chi.Router) {
				r.Get("/", s.mentorHandler.HandleList)
				r.Post("/", s.mentorHandler.HandleInvite)
				r.Get("/{id}", s.mentorHandler.HandleGet)
				r.Put("/{id}", s.mentorHandler.HandleUpdate)
				r.Delete("/{id}", s.mentorHandler.HandleDelete)
			})

			r.Route("/certificate-templates", func(r chi.Router) {
				r.Get("/", s.templateHandler.HandleList)
				r.Post("/", s.templateHandler.HandleCreate)
				r.Get("/{id}", s.templateHandler.HandleGet)
				r.Put("/{id}", s.templateHandler.HandleUpdate)
				r.Delete("/{id}", s.templateHandler.HandleDelete)
			})

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/", s.uploadHandler.HandleUpload)
				r.Get("/{folder}", s.uploadHandler.HandleListFolder)
				r.Delete("/*", s.uploadHandler.HandleDelete)
			})
		})
	})

	return r
}
