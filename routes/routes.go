package routes

import (
	"time"

	"github.com/gorilla/mux"

	"github.com/dda-estates/realestate-backend/cache"
	"github.com/dda-estates/realestate-backend/controllers"
	"github.com/dda-estates/realestate-backend/repository"
	"github.com/dda-estates/realestate-backend/services"
)

func Routes(router *mux.Router, properties repository.PropertyRepository, clients repository.ClientRepository, c *cache.Cache, keepalive *services.KeepAliveService, startTime time.Time) {
	// Property routes
	router.HandleFunc("/api/properties", controllers.CreateProperty(properties, c)).Methods("POST")
	router.HandleFunc("/api/properties", controllers.GetAllProperties(properties, c)).Methods("GET")
	router.HandleFunc("/api/properties/{id}", controllers.GetPropertyByID(properties, c)).Methods("GET")
	router.HandleFunc("/api/properties/{id}", controllers.UpdateProperty(properties, c)).Methods("PUT")
	router.HandleFunc("/api/properties/{id}", controllers.DeleteProperty(properties, c)).Methods("DELETE")

	// Client routes
	router.HandleFunc("/api/clients", controllers.CreateClient(clients, c)).Methods("POST")
	router.HandleFunc("/api/clients", controllers.GetAllClients(clients, c)).Methods("GET")
	router.HandleFunc("/api/clients/{id}", controllers.GetClientByID(clients, c)).Methods("GET")
	router.HandleFunc("/api/clients/{id}", controllers.UpdateClient(clients, c)).Methods("PUT")
	router.HandleFunc("/api/clients/{id}", controllers.DeleteClient(clients, c)).Methods("DELETE")

	// Liveness routes
	router.HandleFunc("/keepalive", controllers.KeepAlive(startTime)).Methods("GET")
	router.HandleFunc("/keepalive/status", controllers.KeepAliveStatus(keepalive)).Methods("GET")
}
