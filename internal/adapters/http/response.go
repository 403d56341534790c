package http

import (
	"encoding/json"
	"net/http"
)

type apiError struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, map[string]any{
		"status": "success",
		"data":   data,
	})
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{
		"status":  "success",
		"message": message,
	})
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, apiError{
		Status:  "error",
		Message: message,
	})
}

// writeBusinessError reports an expected business branch (duplicate favorite,
// empty list) with HTTP 200 and the error status field, matching the
// platform's envelope convention.
func writeBusinessError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, apiError{
		Status:  "error",
		Message: message,
	})
}
