package mw

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/linkshelf/linkshelf/internal/logger"
)

// EnforceHost rejects requests whose Host header matches none of the allowed
// patterns. Patterns are exact hosts or wildcards like "*.example.com". An
// empty allowlist disables the check.
func EnforceHost(allowedHosts []string, log logger.Logger) func(http.Handler) http.Handler {
	if len(allowedHosts) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	log.Debugf("host allowlist active: %v", allowedHosts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hostAllowed(r.Host, allowedHosts) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn("request rejected by host allowlist",
				logger.String("host", r.Host),
				logger.String("remote_ip", r.RemoteAddr))

			// Same error shape as the handlers' JSON responses.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "host not allowed"})
		})
	}
}

func hostAllowed(host string, patterns []string) bool {
	for _, pattern := range patterns {
		if host == pattern {
			return true
		}
		// "*.example.com" matches any subdomain of example.com.
		if strings.HasPrefix(pattern, "*.") && strings.HasSuffix(host, pattern[1:]) {
			return true
		}
	}
	return false
}
