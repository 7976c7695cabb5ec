package handler

import (
	"github.com/storefront/orders-api/internal/core/domain"
	"github.com/storefront/orders-api/internal/core/ports"
)

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Roles:    toRoles(req.Roles),
	}
}

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Roles:    toRoles(req.Roles),
	}
}

func toRoles(r *rolesPayload) *domain.Roles {
	if r == nil {
		return nil
	}
	return &domain.Roles{Admin: r.Admin}
}

func toUserResponse(view *ports.UserView, message string) userResponse {
	return userResponse{
		ID:      view.ID,
		Email:   view.Email,
		Roles:   rolesPayload{Admin: view.Roles.Admin},
		Message: message,
	}
}

func toUserListResponse(result *ports.ListUsersResult) []userResponse {
	items := make([]userResponse, len(result.Items))
	for i := range result.Items {
		items[i] = toUserResponse(&result.Items[i], "")
	}
	return items
}
