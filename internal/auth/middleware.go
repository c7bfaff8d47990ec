package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// Middleware extracts and verifies the bearer token, placing the claims in
// the request context. Requests without a valid token get a 401 so the
// client knows to clear its session.
func Middleware(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			claims, err := svc.VerifyToken(strings.TrimPrefix(header, prefix))
			if err != nil {
				http.Error(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
		})
	}
}

// FromContext returns the verified claims placed by Middleware.
func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*Claims)
	return claims, ok
}
