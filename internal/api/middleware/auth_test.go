package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/storefront/orders-api/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invokeAuth(t *testing.T, authHeader string) (domain.Actor, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var actor domain.Actor
	var reached bool
	next := func(c echo.Context) error {
		reached = true
		actor, _ = c.Get(ActorKey).(domain.Actor)
		return nil
	}

	err := Auth(testSecret)(next)(c)
	return actor, reached, err
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"userId": "u1",
		"admin":  true,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	actor, reached, err := invokeAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("Auth: %v", err)
	}
	if !reached {
		t.Fatal("handler not reached")
	}
	if actor.UserID != "u1" || !actor.Admin {
		t.Errorf("actor = %+v, want u1/admin", actor)
	}
}

func TestAuth_Rejections(t *testing.T) {
	valid := jwt.MapClaims{"userId": "u1", "exp": time.Now().Add(time.Hour).Unix()}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", valid)},
		{"expired", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"userId": "u1",
			"exp":    time.Now().Add(-time.Hour).Unix(),
		})},
		{"no user identity", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, reached, err := invokeAuth(t, tc.header)
			if reached {
				t.Fatal("handler reached with bad credentials")
			}
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("err = %v, want *echo.HTTPError", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Errorf("code = %d, want 401", httpErr.Code)
			}
		})
	}
}

func TestAuth_LowercaseBearerScheme(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"userId": "u1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	_, reached, err := invokeAuth(t, "bearer "+token)
	if err != nil || !reached {
		t.Fatalf("lowercase scheme rejected: reached=%v err=%v", reached, err)
	}
}
