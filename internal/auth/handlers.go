package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	usercontext "certifytrack-go/internal/context"
	"certifytrack-go/internal/user"
	"certifytrack-go/internal/validation"
)

type Handler struct {
	userService user.Service
	authService Service
}

func NewHandler(userService user.Service, authService Service) *Handler {
	return &Handler{
		userService: userService,
		authService: authService,
	}
}

// SignUpRequest represents the data needed to register an operator account
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

// SignInRequest represents the data needed for sign-in
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse is returned on successful sign-in/sign-up
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	u, err := h.userService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailExists):
			http.Error(w, "Email already exists", http.StatusConflict)
		default:
			log.Error().
				Err(err).
				Str("email", req.Email).
				Msg("failed to register user")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.authService.GenerateToken(u)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", u.ID.String()).
			Msg("failed to generate token")
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	h.setAuthCookie(w, r, token)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(AuthResponse{Token: token, User: u}); err != nil {
		log.Error().Err(err).Msg("failed to encode auth response")
	}
}

func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Validate(&req); err != nil {
		errs := validation.FormatError(err)
		http.Error(w, errs[0].Error, http.StatusBadRequest)
		return
	}

	u, err := h.userService.ValidateCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound), errors.Is(err, user.ErrInvalidCredentials):
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		default:
			log.Error().
				Err(err).
				Str("email", req.Email).
				Msg("error validating user credentials")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.authService.GenerateToken(u)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", u.ID.String()).
			Msg("failed to generate auth token")
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	h.setAuthCookie(w, r, token)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(AuthResponse{Token: token, User: u}); err != nil {
		log.Error().Err(err).Msg("failed to encode auth response")
	}
}

func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// HandleCurrentUser returns the profile of the authenticated caller.
func (h *Handler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	info := usercontext.GetUserFromContext(r.Context())
	if info == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.userService.GetByID(r.Context(), info.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Error().
			Err(err).
			Str("user_id", info.ID.String()).
			Msg("failed to load current user")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(u); err != nil {
		log.Error().Err(err).Msg("failed to encode user response")
	}
}

func (h *Handler) setAuthCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   3600 * 24, // matches token expiry
	})
}
