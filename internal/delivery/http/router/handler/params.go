package handler

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// idParam parses a positive integer path parameter.
func idParam(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// textParam returns a decoded path parameter. Echo matches on the raw path when
// the request carries escaped characters, so the value is unescaped only then.
func textParam(c echo.Context, name string) string {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value
	}

	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
