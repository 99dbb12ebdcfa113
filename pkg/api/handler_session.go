package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/relay-agents/relay/pkg/models"
	"github.com/relay-agents/relay/pkg/run"
	"github.com/relay-agents/relay/pkg/services"
)

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c echo.Context) error {
	params := models.SessionListParams{Page: 1, PageSize: 25}

	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			params.Page = p
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			params.PageSize = ps
		}
	}

	result, err := s.sessionService.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, err := s.sessionService.Get(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.NewSessionDetail(sess))
}

// getSessionMessagesHandler handles GET /api/v1/sessions/:id/messages.
// The conversation is rebuilt from the event log, not read from the
// session row, so it works for running sessions too.
func (s *Server) getSessionMessagesHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if _, err := s.sessionService.Get(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}

	rows, err := s.eventService.ListAfter(c.Request().Context(), sessionID, 0)
	if err != nil {
		return mapServiceError(err)
	}

	messages := run.BuildHistory(services.Records(rows))
	if messages == nil {
		messages = []models.Message{}
	}
	return c.JSON(http.StatusOK, &MessagesResponse{
		SessionID: sessionID,
		Messages:  messages,
	})
}

// abortSessionHandler handles POST /api/v1/sessions/:id/abort.
func (s *Server) abortSessionHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if _, err := s.sessionService.Get(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}

	aborted, err := s.runner.Abort(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &AbortResponse{
		SessionID: sessionID,
		Aborted:   aborted,
	})
}

// deleteSessionHandler handles DELETE /api/v1/sessions/:id.
func (s *Server) deleteSessionHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.sessionService.Purge(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
