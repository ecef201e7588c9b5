package resolver

import (
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	calendar "google.golang.org/api/calendar/v3"

	booking "github.com/inference-gateway/voice-scheduling-agent/booking"
	config "github.com/inference-gateway/voice-scheduling-agent/config"
)

// MissingCalComEventType is the message for a Cal.com key without a usable event type
const MissingCalComEventType = "Missing Cal.com event type config. Set CAL_EVENT_TYPE_ID or (CAL_USERNAME + CAL_EVENT_TYPE_SLUG)."

// Scopes requested for Google Calendar access
var Scopes = []string{
	calendar.CalendarScope,
	calendar.CalendarEventsScope,
}

// Resolve picks the active provider from configuration. Cal.com wins when its
// API key is set, even if Google credentials are also present. No network
// calls are made; the application_default strategy reads its credential file.
//
// Errors are booking.ErrNoProviderConfigured, *booking.MissingProviderConfigError
// or *booking.AuthInitError.
func Resolve(cfg *config.Config) (*Capability, error) {
	if cfg.CalCom.APIKey != "" {
		selector, err := ResolveEventTypeSelector(cfg)
		if err != nil {
			return nil, err
		}
		return &Capability{
			Kind: KindCalCom,
			CalCom: &CalComSettings{
				APIKey:           cfg.CalCom.APIKey,
				Selector:         selector,
				AttendeeTimeZone: cfg.CalCom.AttendeeTimeZone,
				BaseURL:          strings.TrimRight(cfg.CalCom.BaseURL, "/"),
			},
		}, nil
	}

	auth, err := resolveGoogleAuth(cfg)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, booking.ErrNoProviderConfigured
	}
	return &Capability{Kind: KindGoogle, Google: auth}, nil
}

// ResolveEventTypeSelector picks the Cal.com event type addressing. A numeric
// id wins over the username + slug pair.
func ResolveEventTypeSelector(cfg *config.Config) (EventTypeSelector, error) {
	if id, ok := cfg.CalComEventTypeID(); ok {
		return EventTypeSelector{Kind: SelectorByID, EventTypeID: id}, nil
	}

	username := strings.TrimSpace(cfg.CalCom.Username)
	slug := strings.TrimSpace(cfg.CalCom.EventTypeSlug)
	if username != "" && slug != "" {
		return EventTypeSelector{Kind: SelectorBySlug, Username: username, Slug: slug}, nil
	}

	return EventTypeSelector{}, &booking.MissingProviderConfigError{
		Provider: booking.ProviderCalCom,
		Detail:   MissingCalComEventType,
	}
}

// resolveGoogleAuth returns nil, nil when no strategy applies
func resolveGoogleAuth(cfg *config.Config) (*GoogleAuth, error) {
	g := cfg.Google

	var (
		auth *GoogleAuth
		err  error
	)
	switch {
	case g.ClientEmail != "" && g.PrivateKey != "":
		auth, err = keyPairAuth(g)
	case g.CredentialsJSON != "":
		auth, err = jsonAuth(g)
	case g.CredentialsPath != "":
		auth, err = fileAuth(g)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	auth.CalendarID = cfg.GoogleCalendarID()
	return auth, nil
}

func keyPairAuth(g config.GoogleConfig) (*GoogleAuth, error) {
	// Hosting dashboards usually store the key with literal "\n" sequences
	key := strings.ReplaceAll(g.PrivateKey, `\n`, "\n")
	if block, _ := pem.Decode([]byte(key)); block == nil {
		return nil, &booking.AuthInitError{
			Strategy: string(StrategyEnvKeyPair),
			Err:      errors.New("GOOGLE_PRIVATE_KEY is not a PEM encoded private key"),
		}
	}

	return &GoogleAuth{
		Strategy:       StrategyEnvKeyPair,
		ServiceAccount: g.ClientEmail,
		JWT: &jwt.Config{
			Email:      g.ClientEmail,
			PrivateKey: []byte(key),
			Scopes:     Scopes,
			TokenURL:   google.JWTTokenURL,
		},
	}, nil
}

func jsonAuth(g config.GoogleConfig) (*GoogleAuth, error) {
	jwtConfig, err := google.JWTConfigFromJSON([]byte(g.CredentialsJSON), Scopes...)
	if err != nil {
		return nil, &booking.AuthInitError{
			Strategy: string(StrategyEnvJSON),
			Err:      fmt.Errorf("invalid GOOGLE_CREDENTIALS_JSON: %w", err),
		}
	}

	return &GoogleAuth{
		Strategy:       StrategyEnvJSON,
		ServiceAccount: jwtConfig.Email,
		JWT:            jwtConfig,
	}, nil
}

// credentialFile is the part of a Google credential file we inspect
type credentialFile struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
}

func fileAuth(g config.GoogleConfig) (*GoogleAuth, error) {
	data, err := os.ReadFile(g.CredentialsPath)
	if err != nil {
		return nil, &booking.AuthInitError{
			Strategy: string(StrategyApplicationDefault),
			Err:      fmt.Errorf("unable to read credentials file %s: %w", g.CredentialsPath, err),
		}
	}

	var cf credentialFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, &booking.AuthInitError{
			Strategy: string(StrategyApplicationDefault),
			Err:      fmt.Errorf("credentials file %s is not valid JSON: %w", g.CredentialsPath, err),
		}
	}
	if cf.Type == "" {
		return nil, &booking.AuthInitError{
			Strategy: string(StrategyApplicationDefault),
			Err:      fmt.Errorf("credentials file %s has no 'type' field", g.CredentialsPath),
		}
	}

	return &GoogleAuth{
		Strategy:        StrategyApplicationDefault,
		ServiceAccount:  cf.ClientEmail,
		CredentialsPath: g.CredentialsPath,
	}, nil
}
