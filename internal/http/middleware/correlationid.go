package middleware

import (
	"net/http"

	"github.com/sarahbeaino/pharmapos/pkg/correlationid"
)

// CorrelationID propagates the inbound correlation ID, generating one when
// the client did not send any. The ID is echoed back in the response.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = correlationid.Generate()
			}

			w.Header().Set(correlationid.Header, id)
			next.ServeHTTP(w, r.WithContext(correlationid.NewContext(r.Context(), id)))
		})
	}
}
