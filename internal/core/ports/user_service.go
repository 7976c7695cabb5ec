package ports

import (
	"context"

	"github.com/storefront/orders-api/internal/core/domain"
)

// CreateUserInput carries the registration payload. Roles defaults to
// {admin:false} when nil.
type CreateUserInput struct {
	Email    string
	Password string
	Roles    *domain.Roles
}

// UpdateUserInput carries a partial user update. Empty string / nil means the
// field is absent; an update with no fields present is rejected.
type UpdateUserInput struct {
	Email    string
	Password string
	Roles    *domain.Roles
}

// UserView is the public representation of a user (never the password hash).
type UserView struct {
	ID    string
	Email string
	Roles domain.Roles
}

// ListUsersInput carries normalized pagination for the list endpoint.
type ListUsersInput struct {
	Page  int
	Limit int
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Items []UserView
	Total int64
	Page  int
	Limit int
}

// UserService defines the use-case operations for users. The ref argument of
// Get/Update/Delete accepts either a store-assigned id or an email address.
type UserService interface {
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	GetUser(ctx context.Context, actor domain.Actor, ref string) (*UserView, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*UserView, error)
	UpdateUser(ctx context.Context, actor domain.Actor, ref string, input UpdateUserInput) (*UserView, error)
	DeleteUser(ctx context.Context, actor domain.Actor, ref string) (*UserView, error)
	// EnsureAdmin creates the bootstrap admin account when it does not exist.
	// A blank email or password disables the bootstrap.
	EnsureAdmin(ctx context.Context, email, password string) error
}
