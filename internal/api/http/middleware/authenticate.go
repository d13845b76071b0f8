package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mytasks/mytasks-server/internal/logger"
	"github.com/mytasks/mytasks-server/internal/model"
)

// Authenticate validates bearer tokens and injects session claims into the
// request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, verifies the token and passes the
// request on with claims in context. Missing and invalid tokens are both 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			m.unauthorized(w, "missing authorization token")
			return
		}

		claims, err := m.tokenManager.Parse(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			m.unauthorized(w, "invalid authorization token")
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetClaimsToContext(r.Context(), claims)))
	})
}

func (m *Authenticate) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
