package middleware

import (
	"net/http"
	"strings"

	"github.com/vaughan-dsouza/salesdesk/internal/utils"
)

// Auth rejects requests without a valid token in the Authorization header.
// The header may hold the raw token or "Bearer <token>". The verified
// identity is stored in the request context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromHeader(r.Header.Get("Authorization"))
			if token == "" {
				utils.Message(w, http.StatusUnauthorized, "Access denied")
				return
			}

			claims, err := utils.VerifyToken(token, secret)
			if err != nil {
				utils.Message(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := utils.WithIdentity(r.Context(), claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromHeader(auth string) string {
	auth = strings.TrimSpace(auth)
	if strings.EqualFold(auth, "bearer") {
		return ""
	}
	if scheme, rest, ok := strings.Cut(auth, " "); ok && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(rest)
	}
	return auth
}
