// Package auth provides operator authentication middleware.
package auth

import (
	"net/http"
	"strings"

	"github.com/chalklabs/tutorgate/internal/storage"
	"github.com/chalklabs/tutorgate/internal/types"
)

// StatsAuth guards the operator endpoints using the stored stats password
// hash. When no password has been configured the endpoints stay open
// (localhost-first); once a hash is stored, requests must carry
// "Authorization: Bearer <password>".
func StatsAuth(store storage.Storage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hash, err := store.GetStatsPasswordHash()
			if err != nil {
				types.WriteError(w, http.StatusInternalServerError, types.MsgRequestFailed)
				return
			}
			if hash == "" {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				types.WriteError(w, http.StatusUnauthorized, "Authorization required")
				return
			}
			password := strings.TrimPrefix(auth, "Bearer ")

			valid, err := storage.VerifyPassword(password, hash)
			if err != nil || !valid {
				types.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
