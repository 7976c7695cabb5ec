package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/orders-api/internal/core/ports"
	"github.com/storefront/orders-api/pkg/pagination"
)

// UserHandler handles HTTP requests for user operations. The :userId path
// segment accepts either a store-assigned id or an email address.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {array}   userResponse
// @Failure      401    {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	params := pagination.Parse(c.QueryParam("page"), c.QueryParam("limit"))

	result, err := h.service.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Page:  params.Page,
		Limit: params.Limit,
	})
	if err != nil {
		return err
	}

	setLinkHeader(c, params, result.Total)
	return c.JSON(http.StatusOK, toUserListResponse(result))
}

// Get handles GET /users/:userId.
//
// @Summary      Get a user by id or email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id or email"
// @Success      200     {object}  userResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.GetUser(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(view, ""))
}

// Create handles POST /users (registration, no auth required).
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Registration details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.CreateUser(c.Request().Context(), toCreateUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(view, "user created"))
}

// Update handles PUT /users/:userId.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string             true  "User id or email"
// @Param        body    body      updateUserRequest  true  "Fields to update"
// @Success      200     {object}  userResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.UpdateUser(c.Request().Context(), actor, c.Param("userId"), toUpdateUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(view, "user update"))
}

// Delete handles DELETE /users/:userId.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id or email"
// @Success      200     {object}  userResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.DeleteUser(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(view, "user delete"))
}
