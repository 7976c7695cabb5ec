package ports

import (
	"context"

	"github.com/storefront/orders-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
// FindByEmail matches the stored email exactly (case-sensitive).
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (string, error)
	Update(ctx context.Context, id string, user *domain.User) error
	Delete(ctx context.Context, id string) error
	// List returns a page of users ordered by id.
	List(ctx context.Context, skip, limit int64) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
