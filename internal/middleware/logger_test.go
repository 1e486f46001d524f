package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/middleware"
)

func requestIDRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.ContextKeyRequestID))
	})
	return r
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	r := requestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	header := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(header)
	require.NoError(t, err, "generated request id should be a UUID")
	assert.Equal(t, header, w.Body.String(), "context value and response header should match")
}

func TestRequestID_CallerValuePreserved(t *testing.T) {
	r := requestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "crm-trace-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "crm-trace-42", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "crm-trace-42", w.Body.String())
}

func TestRecovery_ReturnsEnvelopeOnPanic(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("unreachable state")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "unreachable state", "panic detail must not leak to clients")
}
