package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storefront/orders-api/internal/core/domain"
	"github.com/storefront/orders-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *ports.UserView, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *ports.UserView, error) {
	return s.loginFn(ctx, email, password)
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *ports.UserView, error) {
			if email != "me@example.com" || password != "s3cret" {
				return "", nil, domain.ErrInvalidCredentials
			}
			return "signed-token", &ports.UserView{ID: "u1", Email: email}, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/auth", `{"email":"me@example.com","password":"s3cret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("token = %q", resp.Token)
	}
	if resp.User.ID != "u1" || resp.User.Email != "me@example.com" {
		t.Errorf("user = %+v", resp.User)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *ports.UserView, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newTestContext(http.MethodPost, "/auth", `{"email":"me@example.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/auth", `{"email":"me@example.com"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}
