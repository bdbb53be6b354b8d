package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dda-estates/realestate-backend/cache"
	"github.com/dda-estates/realestate-backend/models"
	"github.com/dda-estates/realestate-backend/query"
	"github.com/dda-estates/realestate-backend/repository"
	"github.com/dda-estates/realestate-backend/utils"
)

type envelope struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	Data         json.RawMessage   `json:"data"`
	Error        string            `json:"error"`
	Pagination   *utils.Pagination `json:"pagination"`
	Cached       bool              `json:"cached"`
	ResponseTime string            `json:"responseTime"`
}

func doRequest(t *testing.T, router *mux.Router, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

// fakePropertyRepo is an in-memory PropertyRepository that evaluates the
// filter spec the same way the Mongo queries would.
type fakePropertyRepo struct {
	mu    sync.Mutex
	items []models.Property
}

func (f *fakePropertyRepo) matching(filter query.PropertyFilter) []models.Property {
	matched := make([]models.Property, 0)
	for _, p := range f.items {
		if matchesProperty(filter, p) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}

func matchesProperty(filter query.PropertyFilter, p models.Property) bool {
	if filter.RentOrSale != "" && p.RentOrSale != filter.RentOrSale {
		return false
	}
	if filter.Status != "" && p.Status != filter.Status {
		return false
	}
	if filter.BHK != "" && p.BHK != filter.BHK {
		return false
	}
	if filter.Ownership != "" && p.HpOrFreehold != filter.Ownership {
		return false
	}
	if filter.MinPrice != nil && (p.Price == nil || *p.Price < *filter.MinPrice) {
		return false
	}
	if filter.MaxPrice != nil && (p.Price == nil || *p.Price > *filter.MaxPrice) {
		return false
	}
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		hay := strings.ToLower(strings.Join([]string{p.Title, p.HouseNo, p.Block, p.Pocket, p.Reference}, "\x00"))
		if !strings.Contains(hay, term) {
			return false
		}
	}
	return true
}

func (f *fakePropertyRepo) Insert(_ context.Context, p *models.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *p)
	return nil
}

func (f *fakePropertyRepo) Find(_ context.Context, filter query.PropertyFilter, page query.Page) ([]models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := f.matching(filter)
	start := int(page.Skip())
	if start >= len(matched) {
		return nil, nil
	}
	end := start + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (f *fakePropertyRepo) Count(_ context.Context, filter query.PropertyFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.matching(filter))), nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id string) (*models.Property, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrMalformedID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			p := f.items[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePropertyRepo) Replace(_ context.Context, id string, p *models.Property) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrMalformedID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			f.items[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakePropertyRepo) Delete(_ context.Context, id string) (*models.Property, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrMalformedID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			deleted := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeClientRepo struct {
	mu    sync.Mutex
	items []models.Client
}

func (f *fakeClientRepo) matching(filter query.ClientFilter) []models.Client {
	matched := make([]models.Client, 0)
	for _, c := range f.items {
		if matchesClient(filter, c) {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}

func matchesClient(filter query.ClientFilter, c models.Client) bool {
	if filter.Requirement != "" && c.Requirement != filter.Requirement {
		return false
	}
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		hay := strings.ToLower(strings.Join([]string{c.ClientName, c.PhoneNumber, c.Description}, "\x00"))
		if !strings.Contains(hay, term) {
			return false
		}
	}
	return true
}

func (f *fakeClientRepo) Insert(_ context.Context, c *models.Client) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeClientRepo) Find(_ context.Context, filter query.ClientFilter, page query.Page) ([]models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := f.matching(filter)
	start := int(page.Skip())
	if start >= len(matched) {
		return nil, nil
	}
	end := start + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (f *fakeClientRepo) Count(_ context.Context, filter query.ClientFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.matching(filter))), nil
}

func (f *fakeClientRepo) FindByID(_ context.Context, id string) (*models.Client, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrMalformedID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeClientRepo) Replace(_ context.Context, id string, c *models.Client) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrMalformedID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			f.items[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeClientRepo) Delete(_ context.Context, id string) (*models.Client, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrMalformedID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			deleted := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newPropertyRouter() (*fakePropertyRepo, *mux.Router) {
	repo := &fakePropertyRepo{}
	c := cache.New(cache.NewMemoryStore(), 0, 0)

	router := mux.NewRouter()
	router.HandleFunc("/api/properties", CreateProperty(repo, c)).Methods("POST")
	router.HandleFunc("/api/properties", GetAllProperties(repo, c)).Methods("GET")
	router.HandleFunc("/api/properties/{id}", GetPropertyByID(repo, c)).Methods("GET")
	router.HandleFunc("/api/properties/{id}", UpdateProperty(repo, c)).Methods("PUT")
	router.HandleFunc("/api/properties/{id}", DeleteProperty(repo, c)).Methods("DELETE")
	return repo, router
}

func newClientRouter() (*fakeClientRepo, *mux.Router) {
	repo := &fakeClientRepo{}
	c := cache.New(cache.NewMemoryStore(), 0, 0)

	router := mux.NewRouter()
	router.HandleFunc("/api/clients", CreateClient(repo, c)).Methods("POST")
	router.HandleFunc("/api/clients", GetAllClients(repo, c)).Methods("GET")
	router.HandleFunc("/api/clients/{id}", GetClientByID(repo, c)).Methods("GET")
	router.HandleFunc("/api/clients/{id}", UpdateClient(repo, c)).Methods("PUT")
	router.HandleFunc("/api/clients/{id}", DeleteClient(repo, c)).Methods("DELETE")
	return repo, router
}
