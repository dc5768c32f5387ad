package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionCookie = "feira_session"

// Session assigns a browsing-session id to every request. The cart and the
// checkout flow are scoped to this id; there is no login.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ck, err := c.Cookie(sessionCookie); err == nil && ck.Value != "" {
				c.Set("session_id", ck.Value)
				return next(c)
			}

			id := uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
			})
			c.Set("session_id", id)
			return next(c)
		}
	}
}

func sessionID(c echo.Context) string {
	s, _ := c.Get("session_id").(string)
	return s
}
