package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := NewService(NewRepository(), testAuthConfig(), nil)

	router := gin.New()
	router.Use(Middleware(service))
	router.GET("/me", func(c *gin.Context) {
		id, ok := RequireUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": ErrAuthRequired.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	return router, service
}

func TestMiddlewareMissingHeader(t *testing.T) {
	router, _ := newProtectedRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing header, got %d", rr.Code)
	}
}

func TestMiddlewareNonBearerHeader(t *testing.T) {
	router, _ := newProtectedRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer header, got %d", rr.Code)
	}
}

func TestMiddlewareInvalidToken(t *testing.T) {
	router, _ := newProtectedRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for invalid token, got %d", rr.Code)
	}
}

func TestMiddlewareValidToken(t *testing.T) {
	router, service := newProtectedRouter(t)

	result, err := service.Register(context.Background(), testRegisterInput())
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d", rr.Code)
	}
}
