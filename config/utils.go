package config

import (
	"crypto/tls"
	"fmt"
	"strconv"
	"strings"
)

// GetTLSConfig returns a TLS configuration based on the config settings
func (c *Config) GetTLSConfig() (*tls.Config, error) {
	if !c.Server.EnableTLS {
		return nil, nil
	}

	tlsConfig := &tls.Config{}

	switch c.TLS.MinVersion {
	case "1.2":
		tlsConfig.MinVersion = tls.VersionTLS12
	case "1.3":
		tlsConfig.MinVersion = tls.VersionTLS13
	default:
		return nil, fmt.Errorf("unsupported TLS version: %s", c.TLS.MinVersion)
	}

	return tlsConfig, nil
}

// GetProtocol returns the protocol scheme (http or https)
func (c *Config) GetProtocol() string {
	if c.Server.EnableTLS {
		return "https"
	}
	return "http"
}

// GetBaseURL returns the complete base URL for the server
func (c *Config) GetBaseURL() string {
	host := c.Server.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("%s://%s:%s", c.GetProtocol(), host, c.Server.Port)
}

// DefaultGoogleCalendarID is used when GOOGLE_CALENDAR_ID is unset
const DefaultGoogleCalendarID = "primary"

// GoogleCalendarID returns the target calendar, falling back to the service account's primary calendar
func (c *Config) GoogleCalendarID() string {
	if id := strings.TrimSpace(c.Google.CalendarID); id != "" {
		return id
	}
	return DefaultGoogleCalendarID
}

// HasCalComEventTypeID reports whether CAL_EVENT_TYPE_ID holds a usable positive integer
func (c *Config) HasCalComEventTypeID() bool {
	_, ok := c.CalComEventTypeID()
	return ok
}

// CalComEventTypeID parses CAL_EVENT_TYPE_ID
func (c *Config) CalComEventTypeID() (int64, bool) {
	raw := strings.TrimSpace(c.CalCom.EventTypeID)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// EnvPresence reports which recognized calendar variables are set, without
// exposing their values.
func (c *Config) EnvPresence() map[string]map[string]bool {
	return map[string]map[string]bool{
		"cal": {
			"CAL_API_KEY":           c.CalCom.APIKey != "",
			"CAL_EVENT_TYPE_ID":     c.HasCalComEventTypeID(),
			"CAL_USERNAME":          c.CalCom.Username != "",
			"CAL_EVENT_TYPE_SLUG":   c.CalCom.EventTypeSlug != "",
			"CAL_ATTENDEE_TIMEZONE": c.CalCom.AttendeeTimeZone != "",
		},
		"google": {
			"GOOGLE_CREDENTIALS_JSON":        c.Google.CredentialsJSON != "",
			"GOOGLE_CLIENT_EMAIL":            c.Google.ClientEmail != "",
			"GOOGLE_PRIVATE_KEY":             c.Google.PrivateKey != "",
			"GOOGLE_APPLICATION_CREDENTIALS": c.Google.CredentialsPath != "",
			"GOOGLE_CALENDAR_ID":             c.Google.CalendarID != "",
		},
		"webhook": {
			"WEBHOOK_SECRET": c.Webhook.Secret != "",
		},
	}
}
