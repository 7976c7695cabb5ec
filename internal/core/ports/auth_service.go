package ports

import "context"

// AuthService authenticates users and issues access tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// public view of the authenticated user.
	Login(ctx context.Context, email, password string) (string, *UserView, error)
}
