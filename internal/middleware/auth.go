package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tinyrecords/tinyrecords-go/internal/service"
)

type contextKey string

const userEmailKey contextKey = "userEmail"

// SessionAuth returns middleware that resolves the session cookie against
// the session registry. Requests without a resolvable token are rejected
// before the wrapped handler runs; otherwise the session's owner email is
// attached to the request context.
func SessionAuth(auth *service.AuthService, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			session, err := auth.ResolveToken(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, service.ErrSessionNotFound) {
					writeJSONError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), userEmailKey, session.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserEmailFromContext extracts the authenticated user's email from the
// request context.
func UserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
