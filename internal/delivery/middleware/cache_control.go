package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

const headerCacheControl = "Cache-Control"

// CacheControl marks successful GET responses as publicly cacheable for maxAge.
func CacheControl(maxAge time.Duration) echo.MiddlewareFunc {
	value := "public, max-age=" + strconv.Itoa(int(maxAge.Seconds()))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodGet {
				c.Response().Before(func() {
					if c.Response().Status < http.StatusBadRequest {
						c.Response().Header().Set(headerCacheControl, value)
					}
				})
			}

			return next(c)
		}
	}
}
