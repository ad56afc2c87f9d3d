package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/user"
	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID = "Ax-User-Id"
	actorKey     = "actor"
)

// CurrentUser resolves the Ax-User-Id header to the acting user's roles. Requests
// without a known user stop here with 401.
func CurrentUser(users user.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderUserID})
			}
			u, err := users.GetByID(c.Request().Context(), userID)
			if errors.Is(err, entity.ErrRecordNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown user"})
			}
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "user lookup failed"})
			}
			c.Set(actorKey, u.Actor())
			return next(c)
		}
	}
}

// ActorFrom returns the user resolved by CurrentUser. Without it the actor holds
// no roles and every guarded operation refuses.
func ActorFrom(c echo.Context) security.Actor {
	a, _ := c.Get(actorKey).(security.Actor)
	return a
}

// WithActor stores a on the context; handlers under test use it in place of CurrentUser.
func WithActor(c echo.Context, a security.Actor) { c.Set(actorKey, a) }
