// Package utils provides small HTTP helpers shared by the server and the
// API client: JSON response writing and a preconfigured resty client.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the Content-Type of every JSON response.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It returns the number of body bytes written. If marshaling fails, nothing
// of data is sent: the response is a plain 500 and a wrapped error is
// returned.
//
// Example usage:
//
//	WriteJSON(w, users, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
