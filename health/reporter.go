package health

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inference-gateway/voice-scheduling-agent/booking"
	"github.com/inference-gateway/voice-scheduling-agent/config"
	"github.com/inference-gateway/voice-scheduling-agent/resolver"
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	msgNoProvider   = "No calendar provider configured. Set CAL_API_KEY (+ CAL_USERNAME/CAL_EVENT_TYPE_SLUG) for Cal.com, or set Google credentials env vars for Google Calendar."
	msgAuthInvalid  = "Auth configuration invalid"
	unknownIdentity = "Unknown Service Account"
)

// Status is the /health payload
type Status struct {
	Status           string `json:"status"`
	Provider         string `json:"provider,omitempty"`
	EventTypeID      int64  `json:"eventTypeId,omitempty"`
	Username         string `json:"username,omitempty"`
	EventTypeSlug    string `json:"eventTypeSlug,omitempty"`
	AttendeeTimeZone string `json:"attendeeTimeZone,omitempty"`
	ServiceAccount   string `json:"serviceAccount,omitempty"`
	TargetCalendarID string `json:"targetCalendarId,omitempty"`
	Message          string `json:"message,omitempty"`
	Error            string `json:"error,omitempty"`
	Timestamp        string `json:"timestamp"`
}

// Healthy reports whether the status is ok
func (s Status) Healthy() bool {
	return s.Status == StatusOK
}

// Reporter checks provider configuration without calling any provider
type Reporter struct {
	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time
}

// NewReporter creates a health reporter over cfg
func NewReporter(cfg *config.Config, logger *zap.Logger) *Reporter {
	return &Reporter{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Report resolves the capability and describes it. Credential files are
// re-read on every call, so a broken mount shows up here.
func (r *Reporter) Report(_ context.Context) Status {
	timestamp := r.now().UTC().Format(time.RFC3339Nano)

	capability, err := resolver.Resolve(r.cfg)
	if err != nil {
		status := r.describeError(err)
		status.Timestamp = timestamp
		return status
	}

	switch capability.Kind {
	case resolver.KindCalCom:
		id, _ := r.cfg.CalComEventTypeID()
		return Status{
			Status:           StatusOK,
			Provider:         booking.ProviderCalCom,
			EventTypeID:      id,
			Username:         r.cfg.CalCom.Username,
			EventTypeSlug:    r.cfg.CalCom.EventTypeSlug,
			AttendeeTimeZone: capability.CalCom.AttendeeTimeZone,
			Timestamp:        timestamp,
		}
	default:
		identity := capability.Google.ServiceAccount
		if identity == "" {
			identity = unknownIdentity
		}
		return Status{
			Status:           StatusOK,
			Provider:         booking.ProviderGoogle,
			ServiceAccount:   identity,
			TargetCalendarID: capability.Google.CalendarID,
			Timestamp:        timestamp,
		}
	}
}

func (r *Reporter) describeError(err error) Status {
	var (
		missing *booking.MissingProviderConfigError
		authErr *booking.AuthInitError
	)

	switch {
	case errors.As(err, &missing):
		return Status{Status: StatusError, Provider: missing.Provider, Message: missing.Detail}
	case errors.As(err, &authErr):
		r.logger.Warn("google credentials are unusable",
			zap.String("component", "health"),
			zap.String("authStrategy", authErr.Strategy),
			zap.Error(err))
		return Status{Status: StatusError, Provider: booking.ProviderGoogle, Message: msgAuthInvalid, Error: authErr.Error()}
	case errors.Is(err, booking.ErrNoProviderConfigured):
		return Status{Status: StatusError, Provider: "none", Message: msgNoProvider}
	default:
		return Status{Status: StatusError, Message: msgAuthInvalid, Error: err.Error()}
	}
}

// Health is the gin handler for GET /health
func (r *Reporter) Health(c *gin.Context) {
	status := r.Report(c.Request.Context())
	if !status.Healthy() {
		c.JSON(http.StatusInternalServerError, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

// DebugEnv is the gin handler for GET /debug/env. Only presence flags are
// returned, never values.
func (r *Reporter) DebugEnv(c *gin.Context) {
	c.JSON(http.StatusOK, r.cfg.EnvPresence())
}
