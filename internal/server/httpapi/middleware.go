package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
)

const userIDContextKey = "userID"

// accessTokenMiddleware authenticates the request from a Bearer token and
// stores the owner id in the echo context for the task handlers.
func (s *Server) accessTokenMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing access token"})
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid access token"})
		}

		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func ownerID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}
