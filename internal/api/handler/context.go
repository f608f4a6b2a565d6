package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware. A
// non-empty login proves the middleware ran; without it the request must not
// reach any service call.
func ctxClaims(c echo.Context) (login, role string, err error) {
	login, _ = c.Get("login").(string)
	role, _ = c.Get("role").(string)
	if login == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return login, role, nil
}
