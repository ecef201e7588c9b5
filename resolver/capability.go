package resolver

import (
	zap "go.uber.org/zap"
	"golang.org/x/oauth2/jwt"
)

// ProviderKind names the active calendar backend
type ProviderKind string

const (
	KindCalCom ProviderKind = "cal.com"
	KindGoogle ProviderKind = "google"
)

// AuthStrategy is how Google credentials were obtained
type AuthStrategy string

const (
	// StrategyEnvKeyPair uses GOOGLE_CLIENT_EMAIL + GOOGLE_PRIVATE_KEY
	StrategyEnvKeyPair AuthStrategy = "env_key_pair"
	// StrategyEnvJSON uses the service account JSON in GOOGLE_CREDENTIALS_JSON
	StrategyEnvJSON AuthStrategy = "env_json"
	// StrategyApplicationDefault uses the credential file at GOOGLE_APPLICATION_CREDENTIALS
	StrategyApplicationDefault AuthStrategy = "application_default"
)

// SelectorKind is how the Cal.com event type is addressed
type SelectorKind string

const (
	SelectorByID   SelectorKind = "by_id"
	SelectorBySlug SelectorKind = "by_slug"
)

// GoogleAuth is the resolved Google credential strategy. Exactly one of JWT
// or CredentialsPath is set.
type GoogleAuth struct {
	Strategy AuthStrategy

	// ServiceAccount is the identity the calendar must be shared with. It can
	// be empty for credential files that are not service accounts.
	ServiceAccount string

	// JWT is set for the env_key_pair and env_json strategies
	JWT *jwt.Config

	// CredentialsPath is set for the application_default strategy
	CredentialsPath string

	CalendarID string
}

// EventTypeSelector addresses the Cal.com event type to book
type EventTypeSelector struct {
	Kind        SelectorKind
	EventTypeID int64
	Username    string
	Slug        string
}

// CalComSettings is the resolved Cal.com configuration
type CalComSettings struct {
	APIKey           string
	Selector         EventTypeSelector
	AttendeeTimeZone string
	BaseURL          string
}

// Capability is the single active provider, resolved once per process.
// Exactly one of Google or CalCom is set, matching Kind.
type Capability struct {
	Kind   ProviderKind
	Google *GoogleAuth
	CalCom *CalComSettings
}

// LogFields describes the capability without credential material
func (c *Capability) LogFields() []zap.Field {
	fields := []zap.Field{zap.String("provider", string(c.Kind))}

	switch c.Kind {
	case KindCalCom:
		sel := c.CalCom.Selector
		fields = append(fields,
			zap.String("selector", string(sel.Kind)),
			zap.String("attendeeTimeZone", c.CalCom.AttendeeTimeZone))
		if sel.Kind == SelectorByID {
			fields = append(fields, zap.Int64("eventTypeId", sel.EventTypeID))
		} else {
			fields = append(fields,
				zap.String("username", sel.Username),
				zap.String("eventTypeSlug", sel.Slug))
		}
	case KindGoogle:
		fields = append(fields,
			zap.String("authStrategy", string(c.Google.Strategy)),
			zap.String("serviceAccount", c.Google.ServiceAccount),
			zap.String("calendarID", c.Google.CalendarID))
	}

	return fields
}
