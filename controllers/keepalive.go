package controllers

import (
	"net/http"
	"time"

	"github.com/dda-estates/realestate-backend/services"
	"github.com/dda-estates/realestate-backend/utils"
)

// KeepAlive is the liveness probe the pinger (and the hosting platform) hits.
func KeepAlive(startTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, utils.Envelope{
			Success: true,
			Message: "API is running",
			Data: map[string]any{
				"status": "ok",
				"uptime": time.Since(startTime).Round(time.Second).String(),
			},
		})
	}
}

func KeepAliveStatus(svc *services.KeepAliveService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, utils.Envelope{
			Success: true,
			Data:    svc.Status(),
		})
	}
}
