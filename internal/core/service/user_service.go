package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/orders-api/internal/api/metrics"
	"github.com/storefront/orders-api/internal/core/domain"
	"github.com/storefront/orders-api/internal/core/ports"
)

// UserService implements ports.UserService.
type UserService struct {
	users    ports.UserRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, validate: validator.New(), logger: logger}
}

// ListUsers returns one page of users plus the total count.
func (s *UserService) ListUsers(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	skip := int64(input.Limit) * int64(input.Page-1)

	users, err := s.users.List(ctx, skip, int64(input.Limit))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	items := make([]ports.UserView, 0, len(users))
	for _, u := range users {
		items = append(items, toUserView(u))
	}

	return &ports.ListUsersResult{
		Items: items,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, nil
}

// GetUser resolves ref (id or email) and returns the target's public view
// when the actor is the target or an admin.
func (s *UserService) GetUser(ctx context.Context, actor domain.Actor, ref string) (*ports.UserView, error) {
	target, err := s.resolveUserRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(target) {
		return nil, domain.ErrForbidden
	}
	view := toUserView(target)
	return &view, nil
}

// CreateUser registers a new user. Email must match the address grammar,
// the password must meet the minimum length, and the email must not already
// be registered (exact match). Roles default to {admin:false}.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*ports.UserView, error) {
	if err := s.checkEmail(input.Email); err != nil {
		return nil, err
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if input.Roles != nil {
		user.Roles = *input.Roles
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}
	user.ID = id

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("user_id", id).Bool("admin", user.Roles.Admin).Msg("user created")
	view := toUserView(user)
	return &view, nil
}

// UpdateUser applies a partial update to the target resolved from ref.
// The actor must be the target or an admin, and only admins may change the
// admin flag's value. An update with no fields present is rejected.
func (s *UserService) UpdateUser(ctx context.Context, actor domain.Actor, ref string, input ports.UpdateUserInput) (*ports.UserView, error) {
	target, err := s.resolveUserRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if input.Email == "" && input.Password == "" && input.Roles == nil {
		return nil, domain.ErrEmptyUpdate
	}
	if !actor.CanMutate(target, input.Roles) {
		return nil, domain.ErrForbidden
	}

	if input.Email != "" {
		if err := s.checkEmail(input.Email); err != nil {
			return nil, err
		}
		target.Email = input.Email
	}
	if input.Password != "" {
		if err := checkPassword(input.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		target.PasswordHash = string(hash)
	}
	if input.Roles != nil {
		target.Roles = *input.Roles
	}

	if err := s.users.Update(ctx, target.ID, target); err != nil {
		s.logger.Error().Err(err).Str("user_id", target.ID).Msg("failed to update user")
		return nil, err
	}

	s.logger.Info().Str("user_id", target.ID).Str("actor_id", actor.UserID).Msg("user updated")
	view := toUserView(target)
	return &view, nil
}

// DeleteUser removes the target resolved from ref when the actor is the
// target or an admin, returning the deleted record's public view.
func (s *UserService) DeleteUser(ctx context.Context, actor domain.Actor, ref string) (*ports.UserView, error) {
	target, err := s.resolveUserRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(target) {
		return nil, domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, target.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", target.ID).Str("actor_id", actor.UserID).Msg("user deleted")
	view := toUserView(target)
	return &view, nil
}

// EnsureAdmin creates the bootstrap admin account on startup when configured
// and not already present.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Roles:        domain.Roles{Admin: true},
	}
	id, err := s.users.Create(ctx, admin)
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	s.logger.Info().Str("user_id", id).Msg("bootstrap admin created")
	return nil
}

// resolveUserRef accepts a store-assigned id or an email in the identifier
// slot: id lookup first, email fallback, ErrUserNotFound when neither works.
func (s *UserService) resolveUserRef(ctx context.Context, ref string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, ref)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return s.users.FindByEmail(ctx, ref)
}

func (s *UserService) checkEmail(email string) error {
	if s.validate.Var(email, "required,email") != nil {
		return domain.ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string) error {
	if len(password) < domain.MinPasswordLength {
		return domain.ErrWeakPassword
	}
	return nil
}

func toUserView(u *domain.User) ports.UserView {
	return ports.UserView{ID: u.ID, Email: u.Email, Roles: u.Roles}
}
