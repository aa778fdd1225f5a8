package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"leadtrack-backend/pkg/utils"
)

// PanicRecovery converts handler panics into the unified error envelope so a
// single bad request can never take the process down.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("PANIC RECOVERED: %v\n%s", err, debug.Stack())
				utils.Error(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
