package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/auth"
	"github.com/sarahbeaino/pharmapos/internal/http/apierr"
)

// BearerAuth rejects requests that do not carry a valid bearer token.
func BearerAuth(authSvc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeUnauthorized(w, apierr.New(apperr.InvalidTokenErr))
				return
			}

			if _, err := authSvc.VerifyToken(token); err != nil {
				writeUnauthorized(w, apierr.New(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, res apierr.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	//nolint:errcheck
	json.NewEncoder(w).Encode(res)
}
