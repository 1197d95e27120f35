package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"tourpack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDateDefaultsSpots(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "2031-06-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Available date added successfully", resp.Message)

	var date models.AvailableDate
	decodeData(t, resp, &date)
	assert.Equal(t, 15, date.Spots)
	assert.Equal(t, time.Date(2031, 6, 1, 0, 0, 0, 0, time.UTC), date.Date.UTC())
}

func TestCreateDateTodayAllowed(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	today := time.Now().UTC().Format("2006-01-02")
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": today, "spots": 8})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateDateRejectsPast(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "2020-01-01"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Date must be in the future", resp.Error)
}

func TestCreateDateRejectsBadFormat(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "01/06/2031"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid date format. Please use ISO format (YYYY-MM-DD)", resp.Error)

	w, resp = doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"spots": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Date is required", resp.Error)
}

func TestCreateDateRejectsNegativeSpots(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "2031-06-01", "spots": -1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Number of spots cannot be negative", resp.Error)
}

func TestCreateDateDuplicate(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "2031-06-01"})
	require.Equal(t, http.StatusCreated, w.Code)

	// a timestamp on the same calendar day is the same date
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "2031-06-01T09:00:00Z"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "This date is already available for this package", resp.Error)
}

func TestSameDateAllowedAcrossPackages(t *testing.T) {
	router, _ := newTestServer(t)
	bali := createTestPackage(t, router, "Bali Retreat")
	alps := createTestPackage(t, router, "Alps Trek")

	for _, id := range []string{bali.ID, alps.ID} {
		w, _ := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+id+"/dates",
			map[string]interface{}{"date": "2031-06-01"})
		require.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestUpdateDate(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, created := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "2031-06-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	var date models.AvailableDate
	decodeData(t, created, &date)

	// spots-only patch keeps the stored date
	w, resp := doJSON(t, router, http.MethodPut, "/api/v1/dates/"+date.ID,
		map[string]interface{}{"spots": 4})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.AvailableDate
	decodeData(t, resp, &updated)
	assert.Equal(t, 4, updated.Spots)
	assert.Equal(t, time.Date(2031, 6, 1, 0, 0, 0, 0, time.UTC), updated.Date.UTC())

	w, resp = doJSON(t, router, http.MethodPut, "/api/v1/dates/"+date.ID,
		map[string]interface{}{"date": "2019-01-01"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Date must be in the future", resp.Error)
}

func TestUpdateDateConflict(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "2031-06-01"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, second := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "2031-06-02"})
	require.Equal(t, http.StatusCreated, w.Code)
	var date models.AvailableDate
	decodeData(t, second, &date)

	w, resp := doJSON(t, router, http.MethodPut, "/api/v1/dates/"+date.ID,
		map[string]interface{}{"date": "2031-06-01"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "This date is already available for this package", resp.Error)
}

func TestDeleteDate(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, created := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/dates",
		map[string]interface{}{"date": "2031-06-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	var date models.AvailableDate
	decodeData(t, created, &date)

	w, resp := doJSON(t, router, http.MethodDelete, "/api/v1/dates/"+date.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Available date deleted successfully", resp.Message)

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/dates/"+date.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Available date not found", resp.Error)
}
