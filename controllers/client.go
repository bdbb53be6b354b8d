package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dda-estates/realestate-backend/cache"
	"github.com/dda-estates/realestate-backend/models"
	"github.com/dda-estates/realestate-backend/query"
	"github.com/dda-estates/realestate-backend/repository"
	"github.com/dda-estates/realestate-backend/utils"
)

const clientEntity = "clients"

func CreateClient(repo repository.ClientRepository, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var client models.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		client.ID = primitive.NewObjectID()
		now := time.Now().UTC()
		client.CreatedAt = now
		client.UpdatedAt = now

		if err := models.ValidateClient(&client); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Client validation failed", err)
			return
		}

		if err := repo.Insert(r.Context(), &client); err != nil {
			utils.Logger.Errorf("Client insert failed: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to create client", nil)
			return
		}

		c.Invalidate(r.Context(), clientEntity)

		utils.WriteJSON(w, http.StatusCreated, utils.Envelope{
			Success: true,
			Message: "Client created successfully",
			Data:    client,
		})
	}
}

func GetAllClients(repo repository.ClientRepository, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		params := r.URL.Query()

		if raw, ok := c.GetList(r.Context(), clientEntity, params); ok {
			writeList(w, raw, true, time.Since(start))
			return
		}

		filter, page := query.ParseClientQuery(params)

		clients, err := repo.Find(r.Context(), filter, page)
		if err != nil {
			utils.Logger.Errorf("Client query failed: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch clients", nil)
			return
		}
		if clients == nil {
			clients = []models.Client{}
		}

		total, err := repo.Count(r.Context(), filter)
		if err != nil {
			utils.Logger.Errorf("Client count failed: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch clients", nil)
			return
		}

		payload, err := marshalListPayload(clients, paginate(page, int64(len(clients)), total))
		if err != nil {
			utils.Logger.Errorf("Failed to serialize clients: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to encode response", nil)
			return
		}
		c.SetList(r.Context(), clientEntity, params, payload)

		writeList(w, payload, false, time.Since(start))
	}
}

func GetClientByID(repo repository.ClientRepository, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := mux.Vars(r)["id"]

		if raw, ok := c.GetEntity(r.Context(), clientEntity, id); ok {
			writeEntity(w, raw, true, time.Since(start))
			return
		}

		client, err := repo.FindByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, err, "Client")
			return
		}

		raw, err := json.Marshal(client)
		if err != nil {
			utils.Logger.Errorf("Failed to serialize client %s: %v", id, err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to encode response", nil)
			return
		}
		c.SetEntity(r.Context(), clientEntity, id, raw)

		writeEntity(w, raw, false, time.Since(start))
	}
}

func UpdateClient(repo repository.ClientRepository, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid update data", err)
			return
		}
		stripImmutable(patch)

		existing, err := repo.FindByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, err, "Client")
			return
		}

		patchBytes, err := json.Marshal(patch)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid update data", err)
			return
		}
		if err := json.Unmarshal(patchBytes, existing); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid update data", err)
			return
		}

		if err := models.ValidateClient(existing); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Client validation failed", err)
			return
		}

		existing.UpdatedAt = time.Now().UTC()
		if err := repo.Replace(r.Context(), id, existing); err != nil {
			respondRepoError(w, err, "Client")
			return
		}

		c.Invalidate(r.Context(), clientEntity)

		utils.WriteJSON(w, http.StatusOK, utils.Envelope{
			Success: true,
			Message: "Client updated successfully",
			Data:    existing,
		})
	}
}

func DeleteClient(repo repository.ClientRepository, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		deleted, err := repo.Delete(r.Context(), id)
		if err != nil {
			respondRepoError(w, err, "Client")
			return
		}

		c.Invalidate(r.Context(), clientEntity)

		utils.WriteJSON(w, http.StatusOK, utils.Envelope{
			Success: true,
			Message: "Client deleted successfully",
			Data:    deleted,
		})
	}
}
