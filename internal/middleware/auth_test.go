package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finbuddy/internal/errors"
	"finbuddy/internal/middleware"
)

// stubResolver returns a fixed identity or error.
type stubResolver struct {
	externalID string
	err        error
}

func (s *stubResolver) Resolve(_ *http.Request) (string, error) {
	return s.externalID, s.err
}

func setupRouter(resolver *stubResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Authenticate(resolver))
	r.GET("/protected", func(c *gin.Context) {
		externalID := c.GetString(middleware.ExternalIDKey)
		c.JSON(http.StatusOK, gin.H{"external_id": externalID})
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	t.Run("passes the external identifier through", func(t *testing.T) {
		r := setupRouter(&stubResolver{externalID: "ext_abc"})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", http.NoBody))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := rec.Body.String(); body != `{"external_id":"ext_abc"}` {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("fails closed with 401 on an unresolvable identity", func(t *testing.T) {
		r := setupRouter(&stubResolver{err: apperrors.ErrUnauthorized})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", http.NoBody))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("maps non-AppError failures to 401", func(t *testing.T) {
		r := setupRouter(&stubResolver{err: errors.New("provider unreachable")})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", http.NoBody))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
