package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/paramparser/pkg/pattern"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

// validID accepts client supplied ids made of letters, digits, '-' and '_'.
var validID = pattern.Compile(`^[a-zA-Z0-9_-]+$`)

// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// stores the id in the request context and echoes it in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !isValid(id) {
			id = uuid.NewString()
		}

		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

func isValid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
