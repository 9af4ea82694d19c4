package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getPagination reads page and limit query params, applying defaults and
// the limit cap
func getPagination(c echo.Context) (page, limit int) {
	page = getIntParam(c, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}

	limit = getIntParam(c, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}
