package controllers_test

import (
	"net/http"
	"testing"

	"tourpack/dto"
	"tourpack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewValidation(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/reviews",
		map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: name, rating, comment", resp.Error)

	// a zero rating is present but out of range
	w, resp = doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/reviews",
		map[string]interface{}{"name": "Ana", "rating": 0, "comment": "meh"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rating must be a number between 1 and 5", resp.Error)

	w, resp = doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/reviews",
		map[string]interface{}{"name": "Ana", "rating": 6, "comment": "too good"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rating must be a number between 1 and 5", resp.Error)
}

func TestCreateReviewDefaultsDate(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/reviews",
		map[string]interface{}{"name": "Ana", "rating": 5, "comment": "Loved it"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Review added successfully", resp.Message)

	var review models.Review
	decodeData(t, resp, &review)
	assert.False(t, review.Date.IsZero())
	assert.Equal(t, pkg.ID, review.PackageID)
}

func TestGetReviewsMetaAndOrder(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	for _, r := range []map[string]interface{}{
		{"name": "Ana", "rating": 4, "comment": "Nice", "date": "2026-01-10"},
		{"name": "Ben", "rating": 5, "comment": "Great", "date": "2026-03-02"},
	} {
		w, _ := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/reviews", r)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/packages/"+pkg.ID+"/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ReviewListResponse
	decodeData(t, resp, &list)
	require.Len(t, list.Reviews, 2)
	// newest first
	assert.Equal(t, "Ben", list.Reviews[0].Name)
	assert.Equal(t, int64(2), list.Meta.Total)
	assert.InDelta(t, 4.5, list.Meta.AverageRating, 0.0001)
}

func TestGetReviewsEmpty(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/packages/"+pkg.ID+"/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ReviewListResponse
	decodeData(t, resp, &list)
	assert.NotNil(t, list.Reviews)
	assert.Empty(t, list.Reviews)
	assert.Zero(t, list.Meta.AverageRating)
}

func TestUpdateReview(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, created := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/reviews",
		map[string]interface{}{"name": "Ana", "rating": 3, "comment": "Fine"})
	require.Equal(t, http.StatusCreated, w.Code)
	var review models.Review
	decodeData(t, created, &review)

	w, resp := doJSON(t, router, http.MethodPut, "/api/v1/reviews/"+review.ID,
		map[string]interface{}{"rating": 9})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rating must be a number between 1 and 5", resp.Error)

	w, resp = doJSON(t, router, http.MethodPut, "/api/v1/reviews/"+review.ID,
		map[string]interface{}{"rating": 5, "comment": "Better on reflection"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Review updated successfully", resp.Message)

	var updated models.Review
	decodeData(t, resp, &updated)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "Ana", updated.Name)
}

func TestDeleteReview(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, created := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/reviews",
		map[string]interface{}{"name": "Ana", "rating": 4, "comment": "Nice"})
	require.Equal(t, http.StatusCreated, w.Code)
	var review models.Review
	decodeData(t, created, &review)

	w, resp := doJSON(t, router, http.MethodDelete, "/api/v1/reviews/"+review.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Review deleted successfully", resp.Message)

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/reviews/"+review.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Review not found", resp.Error)
}
