package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError renders the API failure envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"success": false,
		"error":   message,
	})
}
