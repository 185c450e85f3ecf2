package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseAccountID parses the :accountId path parameter. Returns 0 when the
// parameter is missing or not a positive integer.
func parseAccountID(c echo.Context) int32 {
	id, err := strconv.ParseInt(c.Param("accountId"), 10, 32)
	if err != nil || id <= 0 {
		return 0
	}
	return int32(id)
}
