package handler

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// writeError renders the error envelope every failure path shares.
func writeError(w http.ResponseWriter, status int, message string, details ...string) {
	payload := map[string]interface{}{"error": message}
	if len(details) > 0 {
		payload["details"] = details[0]
	}
	writeJSON(w, status, payload)
}

// NotFoundRoute is the router's fallback for unknown paths, keeping 404s in
// the same JSON shape as every other error.
func NotFoundRoute(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route not found")
}
