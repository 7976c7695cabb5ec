package handler

type rolesPayload struct {
	Admin bool `json:"admin"`
}

type createUserRequest struct {
	Email    string        `json:"email"    validate:"required"`
	Password string        `json:"password" validate:"required"`
	Roles    *rolesPayload `json:"roles"`
}

// updateUserRequest carries a partial update; absent fields stay untouched.
// A body with no fields present is rejected by the service.
type updateUserRequest struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Roles    *rolesPayload `json:"roles"`
}

type userResponse struct {
	ID      string       `json:"_id"`
	Email   string       `json:"email"`
	Roles   rolesPayload `json:"roles"`
	Message string       `json:"message,omitempty"`
}
