package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/dda-estates/realestate-backend/cache"
	"github.com/dda-estates/realestate-backend/config"
	"github.com/dda-estates/realestate-backend/repository"
	"github.com/dda-estates/realestate-backend/routes"
	"github.com/dda-estates/realestate-backend/services"
	"github.com/dda-estates/realestate-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Warnf("Error loading .env file: %v", err)
	}
	utils.InitLogger()

	dbClient, err := config.ConnectDB()
	if err != nil {
		utils.Logger.Fatalf("Failed to connect to the database: %v", err)
	}
	defer config.CloseDBConnection(dbClient)

	config.InitCollections(dbClient)

	properties := repository.NewMongoPropertyRepository(config.PropertyCollection)
	clients := repository.NewMongoClientRepository(config.ClientCollection)

	responseCache := cache.New(newCacheStore(), cache.DefaultListTTL, cache.DefaultEntityTTL)

	startTime := time.Now()
	keepalive := services.NewKeepAliveService(
		os.Getenv("SERVER_URL"),
		config.GetenvDuration("KEEPALIVE_INTERVAL", 13*time.Minute),
		config.GetenvDuration("KEEPALIVE_WARMUP", time.Minute),
	)

	router := mux.NewRouter()
	routes.Routes(router, properties, clients, responseCache, keepalive, startTime)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	port := config.Getenv("PORT", "8080")
	server := &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		utils.Logger.Infof("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatalf("Error starting server: %v", err)
		}
	}()

	// The pinger only makes sense against a public URL on a host that idles
	// the process out, so it stays off outside production.
	if config.Getenv("APP_ENV", "development") == "production" && os.Getenv("SERVER_URL") != "" {
		keepalive.Start()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	utils.Logger.Info("Shutting down server...")
	keepalive.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.Fatalf("Error during server shutdown: %v", err)
	}
	utils.Logger.Info("Server gracefully stopped")
}

func newCacheStore() cache.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return cache.NewMemoryStore()
	}
	store, err := cache.NewRedisStore(addr, os.Getenv("REDIS_PASS"))
	if err != nil {
		utils.Logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	utils.Logger.Info("Connected to Redis")
	return store
}
