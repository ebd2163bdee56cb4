package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLogFieldContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/transactions", http.NoBody)
	return c, rec
}

func fieldValue(fields []interface{}, key string) (interface{}, bool) {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i] == key {
			return fields[i+1], true
		}
	}
	return nil, false
}

func TestRequestLogFields(t *testing.T) {
	t.Run("includes the caller's external identity when resolved", func(t *testing.T) {
		c, _ := newLogFieldContext(t)
		c.Set(ExternalIDKey, "ext_abc")

		fields := requestLogFields(c, "req-1", 5*time.Millisecond)

		got, ok := fieldValue(fields, "external_id")
		if !ok {
			t.Fatal("expected an external_id field")
		}
		if got != "ext_abc" {
			t.Errorf("expected external_id ext_abc, got %v", got)
		}
	})

	t.Run("omits the external identity on unauthenticated paths", func(t *testing.T) {
		c, _ := newLogFieldContext(t)

		fields := requestLogFields(c, "req-1", 5*time.Millisecond)

		if _, ok := fieldValue(fields, "external_id"); ok {
			t.Error("expected no external_id field without authentication")
		}
		if got, _ := fieldValue(fields, "path"); got != "/api/v1/transactions" {
			t.Errorf("expected the request path, got %v", got)
		}
	})
}

func TestRequestLogging_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected an X-Request-ID header on the response")
	}
}
