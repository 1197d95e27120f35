package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourpack/config"
	"tourpack/models"
	"tourpack/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// apiResponse mirrors the envelope with the data left raw so each test
// decodes it into the type it expects
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// newTestServer builds a router over a fresh in-memory database. The
// redis client is nil, which turns caching off.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	router := gin.New()
	routes.SetupRoutes(router, db, nil)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func decodeData(t *testing.T, resp apiResponse, out interface{}) {
	t.Helper()
	require.NotNil(t, resp.Data)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func createTestPackage(t *testing.T, router *gin.Engine, title string) models.Package {
	t.Helper()
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages", map[string]interface{}{
		"packageTitle": title,
		"duration":     "5D4N",
		"price":        999.0,
		"description":  "Five days around " + title,
		"image":        "cover.jpg",
		"location":     title,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var pkg models.Package
	decodeData(t, resp, &pkg)
	require.NotEmpty(t, pkg.ID)
	return pkg
}

func createTestDay(t *testing.T, router *gin.Engine, packageID string, day int) models.ItineraryDay {
	t.Helper()
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/packages/"+packageID+"/itinerary", map[string]interface{}{
		"day":         day,
		"title":       fmt.Sprintf("Day %d", day),
		"description": "On the road",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var d models.ItineraryDay
	decodeData(t, resp, &d)
	require.NotEmpty(t, d.ID)
	return d
}
