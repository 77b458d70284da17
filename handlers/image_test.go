package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"roamify/handlers"
	"roamify/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	images, err := storage.NewLocalImageStore(dir)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/api/images/:filename", handlers.NewImageHandler(images).GetImageHandler)
	return router, dir
}

func TestGetImageServesStoredBytes(t *testing.T) {
	router, dir := newImageRouter(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image-1.png"), []byte("png bytes"), 0o644))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/images/image-1.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png bytes", rec.Body.String())
}

func TestGetImageMissingFile(t *testing.T) {
	router, _ := newImageRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/images/nope.png", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Image not found"}`, rec.Body.String())
}
