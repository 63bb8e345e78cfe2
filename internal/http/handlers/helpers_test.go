package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/stock-keeper/internal/http/handlers"
	"github.com/rogerio-castellano/stock-keeper/internal/http/router"
	"github.com/rogerio-castellano/stock-keeper/internal/logging"
	"github.com/rogerio-castellano/stock-keeper/internal/models"
	"github.com/rogerio-castellano/stock-keeper/internal/repo"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	router   http.Handler
	products *repo.InMemoryProductRepository
	history  *repo.InMemoryHistoryRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	history := repo.NewInMemoryHistoryRepository()
	products := repo.NewInMemoryProductRepository(history)
	s := handlers.NewServer(products, history, logging.Discard()).WithClock(func() time.Time { return fixedNow })
	return &testEnv{
		router:   router.NewRouter(s, router.Options{}),
		products: products,
		history:  history,
	}
}

func newRouterWith(products repo.ProductRepository, history repo.HistoryRepository) http.Handler {
	s := handlers.NewServer(products, history, logging.Discard())
	return router.NewRouter(s, router.Options{})
}

func (e *testEnv) do(method, path string, body any, headers ...http.Header) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if len(headers) > 0 {
		for k, v := range headers[0] {
			req.Header[k] = v
		}
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response %q: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, w.Code, w.Body.String())
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	expectStatus(t, w, http.StatusInternalServerError)
	resp := decode[handlers.ErrorResponse](t, w)
	if resp.Error == "" {
		t.Fatal("expected a non-empty error message")
	}
	return resp.Error
}

func widget() map[string]any {
	return map[string]any{
		"name":     "Widget",
		"unit":     "ea",
		"category": "Hardware",
		"brand":    "Acme",
		"stock":    10,
		"status":   "active",
		"image":    nil,
	}
}

func (e *testEnv) createWidget(t *testing.T) int {
	t.Helper()
	w := e.do(http.MethodPost, "/api/product/new", widget())
	expectStatus(t, w, http.StatusOK)
	return decode[handlers.CreateProductResult](t, w).ProductID
}

func (e *testEnv) listProducts(t *testing.T) []models.Product {
	t.Helper()
	w := e.do(http.MethodGet, "/api/products", nil)
	expectStatus(t, w, http.StatusOK)
	return decode[[]models.Product](t, w)
}

func findByName(products []models.Product, name string) []models.Product {
	var found []models.Product
	for _, p := range products {
		if p.Name != nil && *p.Name == name {
			found = append(found, p)
		}
	}
	return found
}

var errStore = errors.New("connection refused")

// failingProducts fails every call with errStore.
type failingProducts struct{}

func (failingProducts) GetAll(context.Context) ([]models.Product, error) { return nil, errStore }
func (failingProducts) Create(context.Context, models.Product) (int, error) {
	return 0, errStore
}
func (failingProducts) Update(context.Context, models.Product) (repo.UpdateResult, error) {
	return repo.UpdateResult{}, errStore
}
func (failingProducts) InsertIfAbsent(context.Context, models.Product) (bool, error) {
	return false, errStore
}
func (failingProducts) DeleteAll(context.Context) (int64, error) { return 0, errStore }

// failingHistory fails every call with errStore.
type failingHistory struct{}

func (failingHistory) Log(context.Context, models.HistoryEntry) error { return errStore }
func (failingHistory) GetByProductID(context.Context, int) ([]models.HistoryEntry, error) {
	return nil, errStore
}
