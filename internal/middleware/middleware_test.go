package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func TestCorrelationIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"generated when absent", ""},
		{"preserved when present", "test-correlation-id-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CorrelationIDMiddleware())
			router.GET("/test", func(c *gin.Context) {
				assert.Equal(t, GetCorrelationID(c), CorrelationIDFromContext(c.Request.Context()))
				c.String(http.StatusOK, GetCorrelationID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(CorrelationIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			got := w.Header().Get(CorrelationIDHeader)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, w.Body.String())
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			}
		})
	}
}

func nonceRouter(expected string) *gin.Engine {
	router := gin.New()
	router.Use(NonceMiddleware(expected))
	router.POST("/ajax/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestNonceMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *http.Request
		success bool
	}{
		{
			name: "header",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/ajax/test", strings.NewReader(`{}`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set(NonceHeader, "s3cret")
				return req
			},
			success: true,
		},
		{
			name: "form field",
			build: func() *http.Request {
				form := url.Values{NonceFormField: {"s3cret"}}
				req := httptest.NewRequest(http.MethodPost, "/ajax/test", strings.NewReader(form.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			success: true,
		},
		{
			name: "wrong nonce",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/ajax/test", nil)
				req.Header.Set(NonceHeader, "guess")
				return req
			},
		},
		{
			name: "missing nonce",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/ajax/test", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			nonceRouter("s3cret").ServeHTTP(w, tt.build())

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.success, decodeEnvelope(t, w)["success"])
		})
	}
}

func TestNonceMiddleware_EmptyExpectedRejectsEverything(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/ajax/test", nil)
	req.Header.Set(NonceHeader, "")
	w := httptest.NewRecorder()
	nonceRouter("").ServeHTTP(w, req)

	assert.Equal(t, false, decodeEnvelope(t, w)["success"])
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ajax/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ajax/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ajax/x", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_Prune(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.getLimiter("ip:1")

	rl.prune(time.Now())
	_, ok := rl.limiters.Load("ip:1")
	assert.True(t, ok)

	rl.prune(time.Now().Add(time.Hour))
	_, ok = rl.limiters.Load("ip:1")
	assert.False(t, ok)
}

func TestBodyLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimitMiddleware(16))
	router.POST("/ajax/x", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ajax/x", strings.NewReader(`{"a":1}`)))
	assert.Equal(t, true, decodeEnvelope(t, w)["success"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ajax/x", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeEnvelope(t, w)["success"])
}
