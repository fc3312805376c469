package httpapi_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/PraneethAmbegoda/restaurant-menu-app/internal/api/http"
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/domain"
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/service"
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/storage"
)

// newTestServer wires real in-memory stores through the facade and router,
// the same composition the server binary performs.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	restaurant := service.NewRestaurantService(
		storage.NewMemoryMenuStore(domain.DefaultMenu()),
		storage.NewMemoryTableStore(domain.DefaultTables()),
		storage.NewMemoryOrderStore(),
		nil,
	)
	handler := httpapi.NewHandler(restaurant, service.TableQRGenerator{BaseURL: "http://localhost"})

	server := httptest.NewServer(httpapi.NewRouter(handler))
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, client *http.Client, method, url string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_OrderLifecycle(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	// Add Salad to table 1, then read it back.
	code, body := call(t, client, "POST", server.URL+"/tables/1/items/1")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"status":"ok"`)

	code, body = call(t, client, "GET", server.URL+"/tables/1/items")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"name":"Salad"`)

	code, body = call(t, client, "GET", server.URL+"/tables/1/items/1")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"cooking_time":1`)

	// Remove it; the table's order is gone, not empty.
	code, _ = call(t, client, "DELETE", server.URL+"/tables/1/items/1")
	assert.Equal(t, http.StatusOK, code)

	code, body = call(t, client, "GET", server.URL+"/tables/1/items")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body, "no order exists for table 1")
}

func TestServer_UnknownTableFailsEveryOperation(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	for _, req := range []struct{ method, path string }{
		{"POST", "/tables/101/items/1"},
		{"DELETE", "/tables/101/items/1"},
		{"GET", "/tables/101/items"},
		{"GET", "/tables/101/items/1"},
	} {
		code, body := call(t, client, req.method, server.URL+req.path)
		assert.Equal(t, http.StatusNotFound, code, "%s %s", req.method, req.path)
		assert.Contains(t, body, "table 101 not found")
	}
}

func TestServer_TableCountIsStable(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	code, _ := call(t, client, "POST", server.URL+"/tables/7/items/3")
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, client, "DELETE", server.URL+"/tables/7/items/3")
	require.Equal(t, http.StatusOK, code)

	code, body := call(t, client, "GET", server.URL+"/tables")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `,100]`, "all 100 tables regardless of order activity")
}

func TestServer_ConcurrentAddsAndRemoves(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := call(t, client, "POST", server.URL+"/tables/5/items/7")
			assert.Equal(t, http.StatusOK, code)
		}()
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := call(t, client, "DELETE", server.URL+"/tables/5/items/7")
			assert.Equal(t, http.StatusOK, code)
		}()
	}
	wg.Wait()

	code, body := call(t, client, "GET", server.URL+"/tables/5/items")
	assert.Equal(t, http.StatusOK, code)
	// Exactly 5 occurrences of Pizza (item 7) remain.
	assert.Equal(t, 5, strings.Count(body, `"id":7`))
}
