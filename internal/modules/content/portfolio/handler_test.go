package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mrigtrishna/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	items   []models.PortfolioModel
	deleted []primitive.ObjectID
}

func (s *fakeStore) List(context.Context) ([]models.PortfolioModel, error) {
	return s.items, nil
}

func (s *fakeStore) Insert(_ context.Context, item *models.PortfolioModel) error {
	s.items = append(s.items, *item)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	passthrough := func(c *gin.Context) { c.Next() }
	NewHandler(store).RegisterRoutes(r.Group("/api"), passthrough)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestListReturnsEnvelope(t *testing.T) {
	store := &fakeStore{items: []models.PortfolioModel{{
		Base:  models.NewBase(),
		Title: "Dunes",
	}}}
	r := newTestRouter(store)

	w, env := doJSON(t, r, http.MethodGet, "/api/portfolio", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var items []models.PortfolioModel
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Dunes", items[0].Title)
}

func TestCreateDefaultsCategory(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w, env := doJSON(t, r, http.MethodPost, "/api/portfolio",
		`{"title":"Dunes","image":"https://cdn.example.com/d.png","artstationLink":"https://www.artstation.com/artwork/abc"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.Len(t, store.items, 1)
	assert.Equal(t, models.DefaultPortfolioCategory, store.items[0].Category)
	assert.False(t, store.items[0].ID.IsZero())
}

func TestCreateRejectsMissingFields(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w, env := doJSON(t, r, http.MethodPost, "/api/portfolio", `{"title":"Dunes"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestCreateRejectsNonURLImage(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w, _ := doJSON(t, r, http.MethodPost, "/api/portfolio",
		`{"title":"Dunes","image":"not-a-url","artstationLink":"https://www.artstation.com/artwork/abc"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRequiresID(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w, env := doJSON(t, r, http.MethodDelete, "/api/portfolio", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id required", env.Error)
}

func TestDeleteMalformedIDSucceedsWithoutTouchingStore(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w, env := doJSON(t, r, http.MethodDelete, "/api/portfolio?id=not-hex", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "deleted", env.Message)
	assert.Empty(t, store.deleted)
}

func TestDeleteValidID(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)
	id := primitive.NewObjectID()

	w, env := doJSON(t, r, http.MethodDelete, "/api/portfolio?id="+id.Hex(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, id, store.deleted[0])
}
