package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mycolog/entities"
	"mycolog/pkg/user/repository"
)

const usernameHeader = "x-username"

// Identity resolves the x-username header to a user row, creating one on
// first sight, and stores it on the request context. Requests without the
// header pass through; handlers that need an identity use RequireUser.
func Identity(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			name := strings.TrimSpace(c.Request().Header.Get(usernameHeader))
			if name != "" {
				u, err := users.FindOrCreate(name)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
				}
				c.Set("user", u)
			}
			return next(c)
		}
	}
}

// RequireUser returns the resolved caller, or nil when the request carried
// no x-username header.
func RequireUser(c echo.Context) *entities.User {
	u, _ := c.Get("user").(*entities.User)
	return u
}
