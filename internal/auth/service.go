package auth

import (
	"time"

	"github.com/go-chi/jwtauth/v5"

	"certifytrack-go/internal/common/models"
)

type Service interface {
	GetAuth() *jwtauth.JWTAuth
	GenerateToken(user *models.User) (string, error)
}

type authService struct {
	tokenAuth *jwtauth.JWTAuth
}

const TokenExpiry = time.Hour * 24 // 24 hours

// NewService creates a new auth service
func NewService(secretKey string) Service {
	tokenAuth := jwtauth.New("HS256", []byte(secretKey), nil)
	return &authService{
		tokenAuth: tokenAuth,
	}
}

// GetAuth returns the JWTAuth instance for middleware
func (s *authService) GetAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

// GenerateToken creates a new JWT token for a user. The role claim carries
// the application-level role tag read from the users table at sign-in.
func (s *authService) GenerateToken(user *models.User) (string, error) {
	claims := map[string]interface{}{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(TokenExpiry).Unix(),
	}

	_, tokenString, err := s.tokenAuth.Encode(claims)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
