package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// listEventsHandler handles GET /api/v1/sessions/:id/events?after=N.
//
// The cursor is exclusive: the response contains events with id
// strictly greater than after. When caught up on a running session the
// call long-polls; the reader also performs stale-worker recovery.
func (s *Server) listEventsHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	afterID := 0
	if v := c.QueryParam("after"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "after must be a non-negative integer")
		}
		afterID = parsed
	}

	status, events, err := s.reader.List(c.Request().Context(), sessionID, afterID)
	if err != nil {
		if c.Request().Context().Err() != nil {
			// Client gave up mid-poll.
			return nil
		}
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &EventsResponse{
		SessionID: sessionID,
		Status:    string(status),
		Events:    events,
	})
}
