package maintenance

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keeslam/CarRentalManager-sub004/internal/fleet"
)

func setupTestRouter(m *mockRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewService(m)).RegisterRoutes(router)
	return router
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestHandler_ListEvents_Success(t *testing.T) {
	vehicle := testVehicle()
	vehicle.APKDate = datePtr(2030, time.May, 1)

	m := new(mockRepo)
	m.On("ListVehicles", mock.Anything).Return([]fleet.Vehicle{vehicle}, nil)
	m.On("ListReservations", mock.Anything).Return([]fleet.Reservation{}, nil)
	m.On("ListMaintenanceBlocks", mock.Anything).Return([]fleet.Reservation{}, nil)
	router := setupTestRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/maintenance/events", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.True(t, response["success"].(bool))
	meta := response["meta"].(map[string]interface{})
	assert.Equal(t, float64(3), meta["count"])
	m.AssertExpectations(t)
}

func TestHandler_ListEvents_FeedFailure(t *testing.T) {
	m := new(mockRepo)
	m.On("ListVehicles", mock.Anything).Return(nil, errors.New("connection refused"))
	router := setupTestRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/maintenance/events", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := parseResponse(t, w)
	assert.False(t, response["success"].(bool))
}

func TestHandler_EventsForDate_Success(t *testing.T) {
	vehicle := testVehicle()
	vehicle.APKDate = datePtr(2030, time.May, 1)

	m := new(mockRepo)
	m.On("ListVehicles", mock.Anything).Return([]fleet.Vehicle{vehicle}, nil)
	m.On("ListReservations", mock.Anything).Return([]fleet.Reservation{}, nil)
	m.On("ListMaintenanceBlocks", mock.Anything).Return([]fleet.Reservation{}, nil)
	router := setupTestRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/maintenance/events/2030-05-01?event_type=apk_due", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.True(t, response["success"].(bool))
	meta := response["meta"].(map[string]interface{})
	assert.Equal(t, float64(1), meta["count"])
}

func TestHandler_EventsForDate_FilterMismatch(t *testing.T) {
	vehicle := testVehicle()
	vehicle.APKDate = datePtr(2030, time.May, 1)

	m := new(mockRepo)
	m.On("ListVehicles", mock.Anything).Return([]fleet.Vehicle{vehicle}, nil)
	m.On("ListReservations", mock.Anything).Return([]fleet.Reservation{}, nil)
	m.On("ListMaintenanceBlocks", mock.Anything).Return([]fleet.Reservation{}, nil)
	router := setupTestRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/maintenance/events/2030-05-01?q=mercedes", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.True(t, response["success"].(bool))
	assert.Empty(t, response["data"])
}

func TestHandler_EventsForDate_InvalidDate(t *testing.T) {
	m := new(mockRepo)
	router := setupTestRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/maintenance/events/not-a-date", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := parseResponse(t, w)
	assert.False(t, response["success"].(bool))
	m.AssertNotCalled(t, "ListVehicles")
}
