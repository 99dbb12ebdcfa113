package slack

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/slack-go/slack/slackevents"
)

// EventsHandler returns the handler for the Slack Events API callback
// URL. It answers URL verification challenges and routes thread
// messages into the agent; everything else is acknowledged and ignored.
func (s *Service) EventsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to read body")
		}

		event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to parse event")
		}

		switch event.Type {
		case slackevents.URLVerification:
			var challenge slackevents.ChallengeResponse
			if err := json.Unmarshal(body, &challenge); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "failed to parse challenge")
			}
			return c.String(http.StatusOK, challenge.Challenge)

		case slackevents.CallbackEvent:
			msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent)
			if !ok || msg.BotID != "" || msg.SubType != "" {
				return c.NoContent(http.StatusOK)
			}

			threadTS := msg.ThreadTimeStamp
			if threadTS == "" {
				threadTS = msg.TimeStamp
			}
			if err := s.HandleMessage(c.Request().Context(), MessageInput{
				ChannelID: msg.Channel,
				ThreadTS:  threadTS,
				UserID:    msg.User,
				Text:      msg.Text,
			}); err != nil {
				s.logger.Error("Failed to handle Slack message",
					"channel_id", msg.Channel,
					"error", err)
			}
			// Slack retries on non-200; the run itself is async.
			return c.NoContent(http.StatusOK)

		default:
			return c.NoContent(http.StatusOK)
		}
	}
}
