package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"portfolio/internal/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// Mailer relays contact-form notifications through the Resend API. It is
// strictly fire-and-forget: callers log a failed Send and move on, and a
// missing API key disables the relay without error.
type Mailer struct {
	cfg      config.MailerConfig
	client   *http.Client
	endpoint string
	log      zerolog.Logger
}

// New builds a Mailer. A zero-value MailerConfig yields a disabled relay.
func New(cfg config.MailerConfig, log zerolog.Logger) *Mailer {
	return &Mailer{
		cfg:      cfg,
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: resendEndpoint,
		log:      log,
	}
}

// Enabled reports whether the relay is configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.APIKey != "" && m.cfg.FromEmail != "" && m.cfg.ToEmail != ""
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type sendError struct {
	Message string `json:"message"`
}

// Send posts one notification email. When the relay is not configured it
// is a silent no-op.
func (m *Mailer) Send(ctx context.Context, subject, htmlBody string) error {
	if !m.Enabled() {
		m.log.Debug().Msg("mail relay not configured, skipping notification")
		return nil
	}

	payload, err := json.Marshal(sendRequest{
		From:    m.cfg.FromEmail,
		To:      []string{m.cfg.ToEmail},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send resend request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read resend response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr sendError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(body))
	}

	var ok sendResponse
	if err := json.Unmarshal(body, &ok); err != nil {
		m.log.Warn().Err(err).Msg("sent notification but could not parse resend response")
		return nil
	}
	m.log.Info().Str("email_id", ok.ID).Msg("sent contact notification")
	return nil
}
