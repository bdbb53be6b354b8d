package utils

import (
	"encoding/json"
	"net/http"
)

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// Envelope is the single response shape for every endpoint.
type Envelope struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message,omitempty"`
	Data         any         `json:"data,omitempty"`
	Error        string      `json:"error,omitempty"`
	Pagination   *Pagination `json:"pagination,omitempty"`
	Cached       bool        `json:"cached"`
	ResponseTime string      `json:"responseTime,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		Logger.Errorf("Failed to encode response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, status int, message string, err error) {
	env := Envelope{Success: false, Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	WriteJSON(w, status, env)
}
