package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/PraneethAmbegoda/restaurant-menu-app/internal/api/http"
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/domain"
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/mocks"
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/service"
)

func setupTestRouter(mockSvc *mocks.RestaurantServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc, service.TableQRGenerator{BaseURL: "http://localhost:8081"})
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, router *mux.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestHandler_addItem(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		prepareMocks func(mockSvc *mocks.RestaurantServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			path: "/tables/1/items/1",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {
				mockSvc.On("AddItem", uint32(1), uint32(1)).Return(nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"ok"`,
		},
		{
			name: "table_not_found",
			path: "/tables/999/items/1",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {
				mockSvc.On("AddItem", uint32(999), uint32(1)).
					Return(&domain.TableNotFoundError{TableID: 999}).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `"status":"error"`,
		},
		{
			name: "menu_not_found",
			path: "/tables/1/items/999",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {
				mockSvc.On("AddItem", uint32(1), uint32(999)).
					Return(&domain.MenuNotFoundError{ItemID: 999}).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `menu item 999 not found`,
		},
		{
			name:         "non_numeric_table_id_rejected_before_domain",
			path:         "/tables/abc/items/1",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "negative_item_id_rejected_before_domain",
			path:         "/tables/1/items/-2",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store_failure_maps_to_500",
			path: "/tables/1/items/1",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {
				mockSvc.On("AddItem", uint32(1), uint32(1)).
					Return(&domain.StoreError{Op: "add_item", Err: assert.AnError}).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewRestaurantServiceInterface(t)
			router := setupTestRouter(mockSvc)
			testCase.prepareMocks(mockSvc)

			recorder := doRequest(t, router, "POST", testCase.path)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_removeItem(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		prepareMocks func(mockSvc *mocks.RestaurantServiceInterface)
		expectedCode int
	}{
		{
			name: "success",
			path: "/tables/1/items/1",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {
				mockSvc.On("RemoveItem", uint32(1), uint32(1)).Return(nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "no_order_for_table",
			path: "/tables/1/items/1",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {
				mockSvc.On("RemoveItem", uint32(1), uint32(1)).
					Return(&domain.NoOrderForTableError{TableID: 1}).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "no_matching_item",
			path: "/tables/1/items/2",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {
				mockSvc.On("RemoveItem", uint32(1), uint32(2)).
					Return(&domain.NoMatchingItemError{TableID: 1, ItemID: 2}).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed_ids",
			path:         "/tables/1/items/1.5",
			prepareMocks: func(mockSvc *mocks.RestaurantServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewRestaurantServiceInterface(t)
			router := setupTestRouter(mockSvc)
			testCase.prepareMocks(mockSvc)

			recorder := doRequest(t, router, "DELETE", testCase.path)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getItems(t *testing.T) {
	mockSvc := mocks.NewRestaurantServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("GetItems", uint32(1)).
		Return([]domain.MenuItem{{ID: 1, Name: "Burger", CookingTime: 10}}, nil).Once()

	recorder := doRequest(t, router, "GET", "/tables/1/items")
	assert.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, "ok", envelope["status"])
	data, ok := envelope["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	item := data[0].(map[string]interface{})
	assert.Equal(t, "Burger", item["name"])
	assert.Equal(t, float64(10), item["cooking_time"])
}

func TestHandler_getItem(t *testing.T) {
	mockSvc := mocks.NewRestaurantServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("GetItem", uint32(1), uint32(6)).
		Return(domain.MenuItem{ID: 6, Name: "Burger", CookingTime: 10}, nil).Once()

	recorder := doRequest(t, router, "GET", "/tables/1/items/6")
	assert.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	item := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(6), item["id"])
}

func TestHandler_getTablesAndMenus(t *testing.T) {
	mockSvc := mocks.NewRestaurantServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("GetAllTables").Return([]uint32{1, 2, 3}, nil).Once()
	mockSvc.On("GetAllMenus").
		Return([]domain.MenuItem{{ID: 1, Name: "Salad", CookingTime: 1}}, nil).Once()

	recorder := doRequest(t, router, "GET", "/tables")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"data":[1,2,3]`)

	recorder = doRequest(t, router, "GET", "/menus")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Salad"`)
}

func TestHandler_getTablesRetrieveError(t *testing.T) {
	mockSvc := mocks.NewRestaurantServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("GetAllTables").Return(nil, domain.ErrTablesRetrieve).Once()

	recorder := doRequest(t, router, "GET", "/tables")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"error"`)
}

func TestHandler_getTableQRCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := mocks.NewRestaurantServiceInterface(t)
		router := setupTestRouter(mockSvc)

		mockSvc.On("GetAllTables").Return([]uint32{1, 2, 3}, nil).Once()

		recorder := doRequest(t, router, "GET", "/tables/2/qrcode")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
		assert.NotEmpty(t, recorder.Body.Bytes())
	})

	t.Run("unknown_table", func(t *testing.T) {
		mockSvc := mocks.NewRestaurantServiceInterface(t)
		router := setupTestRouter(mockSvc)

		mockSvc.On("GetAllTables").Return([]uint32{1, 2, 3}, nil).Once()

		recorder := doRequest(t, router, "GET", "/tables/42/qrcode")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_healthCheck(t *testing.T) {
	mockSvc := mocks.NewRestaurantServiceInterface(t)
	router := setupTestRouter(mockSvc)

	recorder := doRequest(t, router, "GET", "/health")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
}
