package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	usercontext "certifytrack-go/internal/context"
)

// RequireAdmin gates the admin surface. The dashboard backend serves
// operators only; student accounts get 403 even with a valid token.
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := usercontext.GetUserFromContext(r.Context())
		if info == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if !info.IsAdmin() {
			log.Warn().
				Str("user_id", info.ID.String()).
				Str("path", r.URL.Path).
				Msg("non-admin access attempt")
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(usercontext.WithUser(r.Context(), info)))
	})
}
