package context

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	userContextKey contextKey = "user"
)

// UserInfo is the acting identity resolved from JWT claims. Operations
// that stamp created_by or reviewer_id require it.
type UserInfo struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// IsAdmin reports whether the identity carries the admin role tag.
func (u *UserInfo) IsAdmin() bool {
	return u.Role == "admin"
}

// GetUserFromContext retrieves user info from context. Returns nil when no
// authenticated identity can be resolved.
func GetUserFromContext(ctx context.Context) *UserInfo {
	// If already stored in context, return it
	if user, ok := ctx.Value(userContextKey).(*UserInfo); ok {
		return user
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}

	return getUserFromClaims(claims)
}

// getUserFromClaims creates UserInfo from JWT claims
func getUserFromClaims(claims map[string]interface{}) *UserInfo {
	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || email == "" {
		return nil
	}
	parsedID, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	return &UserInfo{
		ID:    parsedID,
		Email: email,
		Role:  role,
	}
}

// WithUser adds user info to the context
func WithUser(ctx context.Context, user *UserInfo) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
