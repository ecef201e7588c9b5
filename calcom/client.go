package calcom

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/inference-gateway/voice-scheduling-agent/booking"
)

const (
	// APIVersion is sent in the cal-api-version header
	APIVersion = "2024-08-13"

	// DefaultBaseURL is the Cal.com v2 API root
	DefaultBaseURL = "https://api.cal.com/v2"

	redacted = "[REDACTED]"
)

// Client is a minimal Cal.com v2 REST client
type Client struct {
	http   *resty.Client
	apiKey string
	logger *zap.Logger
}

// NewClient creates a Cal.com client authenticated with apiKey
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("cal-api-version", APIVersion).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}

	return &Client{
		http:   httpClient,
		apiKey: apiKey,
		logger: logger,
	}
}

// CreateBooking posts a booking. Non-2xx answers become *booking.ProviderError
// with the API key scrubbed from the body.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*BookingResponse, error) {
	var out BookingResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/bookings")
	if err != nil {
		c.logger.Error("cal.com request failed",
			zap.String("component", "calcom-client"),
			zap.String("operation", "create-booking"),
			zap.String("error", c.redact(err.Error())))
		return nil, fmt.Errorf("cal.com request failed: %w", err)
	}

	if !resp.IsSuccess() {
		body := c.redact(strings.TrimSpace(resp.String()))
		c.logger.Error("cal.com rejected booking",
			zap.String("component", "calcom-client"),
			zap.String("operation", "create-booking"),
			zap.Int("status", resp.StatusCode()),
			zap.String("body", body))
		return nil, &booking.ProviderError{
			Provider: booking.ProviderCalCom,
			Status:   resp.StatusCode(),
			Message:  body,
		}
	}

	c.logger.Debug("cal.com booking created",
		zap.String("component", "calcom-client"),
		zap.String("operation", "create-booking"),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", resp.Time()))

	return &out, nil
}

func (c *Client) redact(s string) string {
	if c.apiKey == "" {
		return s
	}
	return strings.ReplaceAll(s, c.apiKey, redacted)
}
