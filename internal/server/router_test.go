package server_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zouhir-Harch/site-backend/internal/server"
	"github.com/Zouhir-Harch/site-backend/pkg/api"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard)
	return server.NewRouter(api.New(), logger).Engine()
}

func post(t *testing.T, engine *gin.Engine, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func payload(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile("../../examples/payloads/" + name)
	require.NoError(t, err)
	return raw
}

func TestRouter(t *testing.T) {
	engine := newEngine(t)

	t.Run("Should answer the health check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("Should describe the service at the root", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/generate/lettre-motivation")
	})

	t.Run("Should generate a cover letter PDF", func(t *testing.T) {
		w := post(t, engine, "/generate/lettre-motivation", payload(t, "lettre-motivation.json"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="lettre_motivation_Harchi_Zouhir_Acme_Conseil.pdf"`,
			w.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF", w.Body.String()[:4])
	})

	t.Run("Should generate a title page PDF", func(t *testing.T) {
		w := post(t, engine, "/generate/page-de-garde", payload(t, "page-de-garde.json"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="page_de_garde_Harchi_Zouhir.pdf"`,
			w.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF", w.Body.String()[:4])
	})

	t.Run("Should generate a resume PDF", func(t *testing.T) {
		w := post(t, engine, "/generate/cv", payload(t, "cv.json"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="cv_Harchi_Zouhir.pdf"`,
			w.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF", w.Body.String()[:4])
	})

	t.Run("Should reject a payload missing required fields", func(t *testing.T) {
		w := post(t, engine, "/generate/lettre-motivation", []byte(`{"nom":"Harchi"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "detail")
	})

	t.Run("Should reject a malformed body", func(t *testing.T) {
		w := post(t, engine, "/generate/cv", []byte(`{not json`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should echo a request id header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("Should assign a request id when none is sent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Should answer CORS preflight requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/generate/cv", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
