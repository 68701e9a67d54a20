package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmtrv/blogfeed/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

// generate JWT token for test user
func makeTestJWT(t *testing.T, userID uint) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:   userID,
		Username: "tester",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestJWTAuthRejectsAnonymousWithNext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed/following", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := JWTAuth(testSecret)(okHandler)(c); err != nil {
		t.Fatalf("middleware should write the response itself: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"next":"/api/v1/feed/following"`) {
		t.Fatalf("expected the intended destination in the response, got %s", rec.Body.String())
	}
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed/following", nil)
	req.Header.Set("Authorization", "Bearer "+makeTestJWT(t, 7))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uint
	handler := func(c echo.Context) error {
		claims := c.Get("user").(*models.JwtCustomClaims)
		gotID = claims.UserID
		return c.String(http.StatusOK, "ok")
	}

	if err := JWTAuth(testSecret)(handler)(c); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if gotID != 7 {
		t.Fatalf("expected user 7 in context, got %d", gotID)
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	req.Header.Set("Authorization", "Bearer "+makeTestJWT(t, 7))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := JWTAuth("a-different-secret")(okHandler)(c); err != nil {
		t.Fatalf("middleware should write the response itself: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a forged token, got %d", rec.Code)
	}
}

func TestOptionalJWTAuthAllowsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := OptionalJWTAuth(testSecret)(okHandler)(c); err != nil {
		t.Fatalf("anonymous request should pass through: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get("user") != nil {
		t.Fatal("anonymous request should carry no identity")
	}
}

func TestOptionalJWTAuthResolvesIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	req.Header.Set("Authorization", "Bearer "+makeTestJWT(t, 3))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := OptionalJWTAuth(testSecret)(okHandler)(c); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims.UserID != 3 {
		t.Fatalf("expected user 3 in context, got %v", c.Get("user"))
	}
}
