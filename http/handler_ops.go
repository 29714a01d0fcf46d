package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultEventsLimit = 50
	maxEventsLimit     = 500
)

func (h Handler) GetOpsEvents(c echo.Context) error {
	limit := defaultEventsLimit
	if l := c.QueryParam("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive number")
		}
		limit = min(parsed, maxEventsLimit)
	}

	events, err := h.eventRepo.Latest(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, events)
}
