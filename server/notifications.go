package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/disgoorg/disgo/discord"
)

// SendNotification posts a message to the configured Discord webhook. Failures
// are logged and swallowed; notifications are best-effort and must never fail
// the operation that triggered them.
func (s *Server) SendNotification(ctx context.Context, message string) {
	if !s.Cfg.Notifications.Enabled || s.Cfg.Notifications.WebhookURL == "" {
		return
	}

	if err := s.sendWebhookMessage(ctx, discord.WebhookMessageCreate{
		Content: message,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send notification", slog.Any("err", err))
	}
}

func (s *Server) sendWebhookMessage(ctx context.Context, message discord.WebhookMessageCreate) error {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(message); err != nil {
		return fmt.Errorf("failed to encode webhook message: %w", err)
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Cfg.Notifications.WebhookURL, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	rq.Header.Set("Content-Type", "application/json")

	rs, err := s.HttpClient.Do(rq)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer rs.Body.Close()

	if rs.StatusCode < 200 || rs.StatusCode >= 300 {
		data, _ := io.ReadAll(rs.Body)
		return fmt.Errorf("unexpected status code: %d, response: %s", rs.StatusCode, data)
	}

	return nil
}
