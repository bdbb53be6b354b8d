package controllers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/dda-estates/realestate-backend/query"
	"github.com/dda-estates/realestate-backend/repository"
	"github.com/dda-estates/realestate-backend/utils"
)

// listPayload is the cacheable portion of a list response. The cached flag
// and response time are stamped per request, never stored.
type listPayload struct {
	Data       json.RawMessage   `json:"data"`
	Pagination *utils.Pagination `json:"pagination,omitempty"`
}

func paginate(page query.Page, returned, total int64) *utils.Pagination {
	return &utils.Pagination{
		CurrentPage: page.Number,
		TotalPages:  int(math.Ceil(float64(total) / float64(page.Limit))),
		TotalCount:  total,
		HasNext:     page.Skip()+returned < total,
		HasPrev:     page.Number > 1,
	}
}

func marshalListPayload(data any, p *utils.Pagination) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(listPayload{Data: raw, Pagination: p})
}

func writeList(w http.ResponseWriter, raw []byte, cached bool, elapsed time.Duration) {
	var payload listPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		utils.Logger.Errorf("Failed to decode list payload: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to encode response", nil)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.Envelope{
		Success:      true,
		Data:         payload.Data,
		Pagination:   payload.Pagination,
		Cached:       cached,
		ResponseTime: elapsed.Round(time.Microsecond).String(),
	})
}

func writeEntity(w http.ResponseWriter, raw []byte, cached bool, elapsed time.Duration) {
	utils.WriteJSON(w, http.StatusOK, utils.Envelope{
		Success:      true,
		Data:         json.RawMessage(raw),
		Cached:       cached,
		ResponseTime: elapsed.Round(time.Microsecond).String(),
	})
}

// respondRepoError maps repository errors onto the client/server error
// taxonomy: malformed ids are 400, missing records 404, the rest 500.
func respondRepoError(w http.ResponseWriter, err error, entity string) {
	switch {
	case errors.Is(err, repository.ErrMalformedID):
		utils.WriteError(w, http.StatusBadRequest, "Invalid "+entity+" ID", nil)
	case errors.Is(err, repository.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, entity+" not found", nil)
	default:
		utils.Logger.Errorf("%s persistence error: %v", entity, err)
		utils.WriteError(w, http.StatusInternalServerError, "Unexpected server error", nil)
	}
}

// stripImmutable removes fields a merge patch may not touch.
func stripImmutable(patch map[string]any) {
	delete(patch, "_id")
	delete(patch, "createdAt")
	delete(patch, "updatedAt")
}
