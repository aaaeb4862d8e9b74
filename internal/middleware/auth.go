package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Abhiraj235/GearGo/internal/auth"
)

type ctxKey string

const UserIDKey ctxKey = "uid"

// Identity extracts the caller's user id from a bearer token, checking the
// Authorization header first and then the access_token cookie the auth
// endpoints set. Requests without a usable token pass through anonymous;
// rejecting them is up to the handlers that require identity.
func Identity(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := ""
			if v := r.Header.Get("Authorization"); strings.HasPrefix(v, "Bearer ") {
				raw = strings.TrimPrefix(v, "Bearer ")
			}
			if raw == "" {
				if c, err := r.Cookie("access_token"); err == nil {
					raw = c.Value
				}
			}

			if raw != "" {
				if claims, err := auth.ParseToken(raw, secret); err == nil {
					ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserID returns the authenticated caller's id, if any.
func UserID(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UserIDKey).(string)
	return uid, ok
}
