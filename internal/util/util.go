package util

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

func GetClientIPAddress(r *http.Request) string {
	if forwardedIP := r.Header.Get("X-Forwarded-For"); forwardedIP != "" {
		// First entry is the originating client when proxies append.
		if i := strings.IndexByte(forwardedIP, ','); i >= 0 {
			return strings.TrimSpace(forwardedIP[:i])
		}
		return forwardedIP
	}
	return r.RemoteAddr
}

var urlPattern = regexp.MustCompile(`^(https?://)?([a-zA-Z0-9.-]+)(:[0-9]+)?(/.*)?$`)

func IsValidURL(input string) bool {
	if input == "" {
		return false
	}

	if !urlPattern.MatchString(input) {
		return false
	}

	u, err := url.Parse(input)
	if err != nil {
		return false
	}

	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	if u.Host == "" {
		return false
	}

	return true
}
