package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/orders-api/internal/api/middleware"
	"github.com/storefront/orders-api/internal/core/domain"
)

// ctxActor extracts the caller identity injected by the Auth middleware.
// Its presence proves the middleware ran; absence means the route was reached
// without authentication and is rejected outright.
func ctxActor(c echo.Context) (domain.Actor, error) {
	actor, ok := c.Get(middleware.ActorKey).(domain.Actor)
	if !ok || actor.UserID == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}
