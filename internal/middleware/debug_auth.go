package middleware

import (
	"net/http"
	"strings"

	"plink_backend/internal/service"
	"plink_backend/pkg/token"
)

// DebugAuth protects the debug routes: the persisted debug-menu flag must be
// on and the request must carry a valid bearer token from /debug/unlock.
func DebugAuth(secretKey []byte, settings service.SettingsService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			if _, err := token.VerifyToken(strings.TrimPrefix(header, "Bearer "), secretKey); err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			enabled, err := settings.DebugMenuEnabled(r.Context())
			if err != nil {
				http.Error(w, "failed to read debug menu state", http.StatusInternalServerError)
				return
			}
			if !enabled {
				http.Error(w, "debug menu disabled", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
