package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"dropscout/internal/config"
)

// BasicAuth guards the API when credentials are configured. With no
// credentials set the middleware passes everything through, which is the
// default for the public userscript backend.
func BasicAuth() func(http.Handler) http.Handler {
	username := config.AppConfig.BasicAuthUser
	password := config.AppConfig.BasicAuthPass

	return func(next http.Handler) http.Handler {
		if username == "" || password == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")

			if !strings.HasPrefix(auth, "Basic ") {
				w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			pair := strings.SplitN(string(payload), ":", 2)
			if len(pair) != 2 || pair[0] != username || pair[1] != password {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
