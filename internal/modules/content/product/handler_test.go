package product

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
	items []models.ProductModel
}

func (s *fakeStore) List(context.Context) ([]models.ProductModel, error) { return s.items, nil }

func (s *fakeStore) Insert(_ context.Context, item *models.ProductModel) error {
	s.items = append(s.items, *item)
	return nil
}

func (s *fakeStore) Delete(context.Context, primitive.ObjectID) error { return nil }

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	passthrough := func(c *gin.Context) { c.Next() }
	NewHandler(store).RegisterRoutes(r.Group("/api"), passthrough)
	return r
}

func TestShopIsAnAliasOfProducts(t *testing.T) {
	store := &fakeStore{items: []models.ProductModel{{
		Base:  models.NewBase(),
		Title: "Rock Pack",
		Price: "$12",
	}}}
	r := newTestRouter(store)

	for _, path := range []string{"/api/products", "/api/shop"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)

		var env struct {
			Success bool                  `json:"success"`
			Data    []models.ProductModel `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Len(t, env.Data, 1, path)
		assert.Equal(t, "Rock Pack", env.Data[0].Title)
	}
}

func TestCreateKeepsPriceAsDisplayString(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	body := `{"title":"Rock Pack","category":"Assets","price":"$12.50","image":"https://cdn.example.com/r.png","gumroadLink":"https://gum.road/x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.items, 1)
	assert.Equal(t, "$12.50", store.items[0].Price)
}

func TestCreateRejectsMissingPrice(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	body := `{"title":"Rock Pack","category":"Assets","image":"https://cdn.example.com/r.png","gumroadLink":"https://gum.road/x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
