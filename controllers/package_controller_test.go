package controllers_test

import (
	"net/http"
	"testing"

	"tourpack/dto"
	"tourpack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePackageAppliesDefaults(t *testing.T) {
	router, _ := newTestServer(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages", map[string]interface{}{
		"packageTitle": "Bali Retreat",
		"duration":     "7D6N",
		"price":        1200.0,
		"description":  "A week in Bali",
		"image":        "bali.jpg",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Package created successfully", resp.Message)

	var pkg models.Package
	decodeData(t, resp, &pkg)
	assert.NotEmpty(t, pkg.ID)
	assert.Equal(t, 2, pkg.MinGroupSize)
	assert.Equal(t, 15, pkg.MaxGroupSize)
}

func TestCreatePackageMissingFields(t *testing.T) {
	router, _ := newTestServer(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages", map[string]interface{}{
		"packageTitle": "Bali Retreat",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required fields: duration, price, description, image", resp.Error)
}

func TestCreatePackageMalformedBody(t *testing.T) {
	router, _ := newTestServer(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages", "{not json")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", resp.Error)
}

func TestGetPackagesRejectsUnknownOrder(t *testing.T) {
	router, _ := newTestServer(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/packages?orderBy=rating", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid orderBy parameter. Must be one of: packageTitle, price, duration, id", resp.Error)

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/packages?orderDir=sideways", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid orderDir parameter. Must be one of: asc, desc", resp.Error)
}

func TestGetPackagesSortsAndCounts(t *testing.T) {
	router, _ := newTestServer(t)

	bali := createTestPackage(t, router, "Bali Retreat")
	createTestPackage(t, router, "Alps Trek")

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+bali.ID+"/gallery",
		map[string]interface{}{"imageUrl": "beach.jpg"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/packages/"+bali.ID+"/reviews",
		map[string]interface{}{"name": "Ana", "rating": 5, "comment": "Loved it"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/packages", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.PackageListResponse
	decodeData(t, resp, &list)
	require.Len(t, list.Packages, 2)
	assert.Equal(t, int64(2), list.Meta.Total)
	assert.Equal(t, "packageTitle", list.Meta.OrderBy)
	assert.Equal(t, "asc", list.Meta.OrderDir)
	assert.Nil(t, list.Meta.Limit)

	assert.Equal(t, "Alps Trek", list.Packages[0].PackageTitle)
	assert.Equal(t, "Bali Retreat", list.Packages[1].PackageTitle)
	assert.Equal(t, int64(1), list.Packages[1].Counts.Gallery)
	assert.Equal(t, int64(1), list.Packages[1].Counts.Reviews)
	assert.Equal(t, int64(0), list.Packages[0].Counts.Gallery)
}

func TestGetPackagesPagination(t *testing.T) {
	router, _ := newTestServer(t)

	createTestPackage(t, router, "Alps Trek")
	createTestPackage(t, router, "Bali Retreat")
	createTestPackage(t, router, "Cairo Nights")

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/packages?limit=1&offset=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.PackageListResponse
	decodeData(t, resp, &list)
	require.Len(t, list.Packages, 1)
	assert.Equal(t, "Bali Retreat", list.Packages[0].PackageTitle)
	// total stays the unfiltered count
	assert.Equal(t, int64(3), list.Meta.Total)
	require.NotNil(t, list.Meta.Limit)
	assert.Equal(t, 1, *list.Meta.Limit)
}

func TestGetPackageDetailNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/packages/missing-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Package not found", resp.Error)
}

func TestGetPackageDetailEagerLoadsChildren(t *testing.T) {
	router, _ := newTestServer(t)

	pkg := createTestPackage(t, router, "Bali Retreat")
	day2 := createTestDay(t, router, pkg.ID, 2)
	day1 := createTestDay(t, router, pkg.ID, 1)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/itinerary/"+day1.ID+"/meals",
		map[string]interface{}{"name": "Breakfast"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/itinerary/"+day1.ID+"/activities",
		map[string]interface{}{"name": "Snorkeling"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/highlights",
		map[string]interface{}{"description": "Sunset cruise"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/packages/"+pkg.ID+"/faqs",
		map[string]interface{}{"question": "Visa?", "answer": "On arrival"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/packages/"+pkg.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.Package
	decodeData(t, resp, &detail)
	require.Len(t, detail.Itinerary, 2)
	// days come back ascending regardless of insertion order
	assert.Equal(t, 1, detail.Itinerary[0].Day)
	assert.Equal(t, 2, detail.Itinerary[1].Day)
	assert.Equal(t, day2.ID, detail.Itinerary[1].ID)
	require.Len(t, detail.Itinerary[0].Meals, 1)
	assert.Equal(t, "breakfast", detail.Itinerary[0].Meals[0].Name)
	require.Len(t, detail.Itinerary[0].Activities, 1)
	assert.Len(t, detail.Highlights, 1)
	assert.Len(t, detail.FAQs, 1)
}

func TestUpdatePackagePartial(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	w, resp := doJSON(t, router, http.MethodPut, "/api/v1/packages/"+pkg.ID,
		map[string]interface{}{"price": 1499.0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Package updated successfully", resp.Message)

	var updated models.Package
	decodeData(t, resp, &updated)
	assert.Equal(t, 1499.0, updated.Price)
	assert.Equal(t, "Bali Retreat", updated.PackageTitle)
}

func TestUpdatePackageRejectsBadGroupSizes(t *testing.T) {
	router, _ := newTestServer(t)
	pkg := createTestPackage(t, router, "Bali Retreat")

	// raising min above the stored max of 15
	w, resp := doJSON(t, router, http.MethodPut, "/api/v1/packages/"+pkg.ID,
		map[string]interface{}{"minGroupSize": 20})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "minGroupSize cannot be greater than maxGroupSize", resp.Error)

	w, resp = doJSON(t, router, http.MethodPut, "/api/v1/packages/"+pkg.ID,
		map[string]interface{}{"packageTitle": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Package title cannot be empty", resp.Error)
}

func TestDeletePackageCascades(t *testing.T) {
	router, db := newTestServer(t)

	pkg := createTestPackage(t, router, "Bali Retreat")
	day := createTestDay(t, router, pkg.ID, 1)

	for path, body := range map[string]map[string]interface{}{
		"/api/v1/itinerary/" + day.ID + "/activities": {"name": "Snorkeling"},
		"/api/v1/itinerary/" + day.ID + "/meals":      {"name": "lunch"},
		"/api/v1/packages/" + pkg.ID + "/gallery":     {"imageUrl": "beach.jpg"},
		"/api/v1/packages/" + pkg.ID + "/highlights":  {"description": "Sunset cruise"},
		"/api/v1/packages/" + pkg.ID + "/inclusions":  {"description": "Hotel"},
		"/api/v1/packages/" + pkg.ID + "/exclusions":  {"description": "Flights"},
		"/api/v1/packages/" + pkg.ID + "/dates":       {"date": "2031-06-01"},
		"/api/v1/packages/" + pkg.ID + "/reviews":     {"name": "Ana", "rating": 5, "comment": "Loved it"},
		"/api/v1/packages/" + pkg.ID + "/faqs":        {"question": "Visa?", "answer": "On arrival"},
	} {
		w, _ := doJSON(t, router, http.MethodPost, path, body)
		require.Equal(t, http.StatusCreated, w.Code, path)
	}

	w, resp := doJSON(t, router, http.MethodDelete, "/api/v1/packages/"+pkg.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Package deleted successfully", resp.Message)

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/packages/"+pkg.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	for name, model := range map[string]interface{}{
		"itinerary days": &models.ItineraryDay{},
		"activities":     &models.Activity{},
		"meals":          &models.Meal{},
		"gallery":        &models.Gallery{},
		"highlights":     &models.Highlight{},
		"inclusions":     &models.Inclusion{},
		"exclusions":     &models.Exclusion{},
		"dates":          &models.AvailableDate{},
		"reviews":        &models.Review{},
		"faqs":           &models.FAQ{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "leftover "+name)
	}
}

func TestDeletePackageNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w, resp := doJSON(t, router, http.MethodDelete, "/api/v1/packages/missing-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Package not found", resp.Error)
}

func TestSearchPackages(t *testing.T) {
	router, _ := newTestServer(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/packages/search", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Search query is required", resp.Error)

	createTestPackage(t, router, "Bali Retreat")
	createTestPackage(t, router, "Alps Trek")

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/packages/search?q=bali", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var results []dto.ScoredPackage
	decodeData(t, resp, &results)
	require.NotEmpty(t, results)
	assert.Equal(t, "Bali Retreat", results[0].Package.PackageTitle)
	assert.Greater(t, results[0].Score, 0)
}
