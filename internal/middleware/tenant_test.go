package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayanin-dev/chat-relay/internal/domain"
)

type stubResolver struct {
	tenant *domain.Tenant
	err    error
}

func (s *stubResolver) Resolve(ctx context.Context, host string) (*domain.Tenant, error) {
	return s.tenant, s.err
}

func newTenantRouter(resolver *stubResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ResolveTenant(resolver))
	r.GET("/ping", func(c *gin.Context) {
		tenant, ok := TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no tenant"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tenant": tenant.Name})
	})
	return r
}

func TestResolveTenant_Found(t *testing.T) {
	r := newTenantRouter(&stubResolver{tenant: &domain.Tenant{ID: "t1", Name: "Acme"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "acme.example.com"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
}

func TestResolveTenant_NotFound(t *testing.T) {
	r := newTenantRouter(&stubResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "unknown.example.com"
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Tenant not found or inactive", body["error"])
	assert.Equal(t, "Please check your domain configuration", body["message"])
}

func TestResolveTenant_ResolverError(t *testing.T) {
	r := newTenantRouter(&stubResolver{err: assert.AnError})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestID_Generated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-abc", w.Header().Get(RequestIDHeader))
}
