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

const propertyEntity = "properties"

func CreateProperty(repo repository.PropertyRepository, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		property.ID = primitive.NewObjectID()
		if property.Status == "" {
			property.Status = "Available"
		}
		now := time.Now().UTC()
		property.CreatedAt = now
		property.UpdatedAt = now

		if err := models.ValidateProperty(&property); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Property validation failed", err)
			return
		}

		if err := repo.Insert(r.Context(), &property); err != nil {
			utils.Logger.Errorf("Property insert failed: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to create property", nil)
			return
		}

		c.Invalidate(r.Context(), propertyEntity)

		utils.WriteJSON(w, http.StatusCreated, utils.Envelope{
			Success: true,
			Message: "Property saved successfully",
			Data:    property,
		})
	}
}

func GetAllProperties(repo repository.PropertyRepository, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		params := r.URL.Query()

		if raw, ok := c.GetList(r.Context(), propertyEntity, params); ok {
			writeList(w, raw, true, time.Since(start))
			return
		}

		filter, page := query.ParsePropertyQuery(params)

		properties, err := repo.Find(r.Context(), filter, page)
		if err != nil {
			utils.Logger.Errorf("Property query failed: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch properties", nil)
			return
		}
		if properties == nil {
			properties = []models.Property{}
		}

		total, err := repo.Count(r.Context(), filter)
		if err != nil {
			utils.Logger.Errorf("Property count failed: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch properties", nil)
			return
		}

		payload, err := marshalListPayload(properties, paginate(page, int64(len(properties)), total))
		if err != nil {
			utils.Logger.Errorf("Failed to serialize properties: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to encode response", nil)
			return
		}
		c.SetList(r.Context(), propertyEntity, params, payload)

		writeList(w, payload, false, time.Since(start))
	}
}

func GetPropertyByID(repo repository.PropertyRepository, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := mux.Vars(r)["id"]

		if raw, ok := c.GetEntity(r.Context(), propertyEntity, id); ok {
			writeEntity(w, raw, true, time.Since(start))
			return
		}

		property, err := repo.FindByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, err, "Property")
			return
		}

		raw, err := json.Marshal(property)
		if err != nil {
			utils.Logger.Errorf("Failed to serialize property %s: %v", id, err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to encode response", nil)
			return
		}
		c.SetEntity(r.Context(), propertyEntity, id, raw)

		writeEntity(w, raw, false, time.Since(start))
	}
}

// UpdateProperty applies merge-patch semantics: only supplied fields change,
// and the merged document is validated before it is written back.
func UpdateProperty(repo repository.PropertyRepository, c *cache.Cache) http.HandlerFunc {
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
			respondRepoError(w, err, "Property")
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

		if err := models.ValidateProperty(existing); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Property validation failed", err)
			return
		}

		existing.UpdatedAt = time.Now().UTC()
		if err := repo.Replace(r.Context(), id, existing); err != nil {
			respondRepoError(w, err, "Property")
			return
		}

		c.Invalidate(r.Context(), propertyEntity)

		utils.WriteJSON(w, http.StatusOK, utils.Envelope{
			Success: true,
			Message: "Property updated successfully",
			Data:    existing,
		})
	}
}

func DeleteProperty(repo repository.PropertyRepository, c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		deleted, err := repo.Delete(r.Context(), id)
		if err != nil {
			respondRepoError(w, err, "Property")
			return
		}

		c.Invalidate(r.Context(), propertyEntity)

		utils.WriteJSON(w, http.StatusOK, utils.Envelope{
			Success: true,
			Message: "Property deleted successfully",
			Data:    deleted,
		})
	}
}
