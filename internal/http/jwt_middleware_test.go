package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"class-finder/internal/service"
)

func TestJWTAuthMiddleware_AllowsValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtSvc := service.NewJWTService("secret", 15*time.Minute)
	token, err := jwtSvc.Issue("web-ui")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(jwtSvc), func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok || claims.Client != "web-ui" {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestJWTAuthMiddleware_RejectsMissingAndInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtSvc := service.NewJWTService("secret", 15*time.Minute)

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(jwtSvc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, header := range []string{"", "Token abc", "Bearer ", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
		if rec.Header().Get("WWW-Authenticate") == "" {
			t.Fatalf("header %q: expected WWW-Authenticate challenge", header)
		}
	}
}

func TestJWTAuthMiddleware_NotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "  bearer   abc  ", token: "abc", ok: true},
		{header: "Basic abc", ok: false},
		{header: "Bearer", ok: false},
		{header: "", ok: false},
	}
	for _, tc := range cases {
		token, ok := bearerToken(tc.header)
		if token != tc.token || ok != tc.ok {
			t.Fatalf("%q: expected (%q,%v), got (%q,%v)", tc.header, tc.token, tc.ok, token, ok)
		}
	}
}
