package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Benjamin-Solano/U-vote/internal/core/domain"
)

type contextKey string

// UserIDKey carries the authenticated participant id through the
// request context. Handlers read it and pass it to services as an
// explicit argument; services never touch the context value themselves.
const UserIDKey contextKey = "userID"

// AuthMiddleware validates the access_token cookie (HS256 JWT issued by
// the external identity service) and resolves its subject to a user id.
func AuthMiddleware(jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("access_token")
			if err != nil || cookie.Value == "" {
				respondError(w, fmt.Errorf("%w: missing access token", domain.ErrUnauthenticated))
				return
			}

			token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return jwtSecret, nil
			})
			if err != nil || !token.Valid {
				respondError(w, fmt.Errorf("%w: invalid access token", domain.ErrUnauthenticated))
				return
			}

			sub, err := token.Claims.GetSubject()
			if err != nil {
				respondError(w, fmt.Errorf("%w: invalid token claims", domain.ErrUnauthenticated))
				return
			}

			userID, err := uuid.Parse(sub)
			if err != nil {
				respondError(w, fmt.Errorf("%w: invalid token subject", domain.ErrUnauthenticated))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
