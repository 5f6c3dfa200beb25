package middleware

import (
	"context"
	"net/http"
	"strings"

	"vaccination-management/internal/domain/entity"
	"vaccination-management/internal/service"
	"vaccination-management/pkg/response"
)

type contextKey string

const UserKey contextKey = "user"

type AuthMiddleware struct {
	guard *service.Guard
}

func NewAuthMiddleware(guard *service.Guard) *AuthMiddleware {
	return &AuthMiddleware{
		guard: guard,
	}
}

// Authenticate resolves the bearer token to a live user and stores it in the
// request context. Role checks are left to the usecases.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.FromError(w, service.ErrMissingToken, "")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.FromError(w, service.ErrInvalidCredential, "")
			return
		}

		user, err := m.guard.Authenticate(r.Context(), parts[1])
		if err != nil {
			response.FromError(w, err, "Failed to validate token")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticateFunc wraps a single handler function.
func (m *AuthMiddleware) AuthenticateFunc(next http.HandlerFunc) http.Handler {
	return m.Authenticate(next)
}

// GetUserFromContext extracts the authenticated user from context
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	return user, ok && user != nil
}
