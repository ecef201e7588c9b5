package booking

import (
	"context"
)

// Provider books a meeting against one calendar backend
//
//go:generate counterfeiter -generate
//counterfeiter:generate -o mocks . Provider
type Provider interface {
	// Name identifies the backend ("google" or "cal.com")
	Name() string

	// Ready returns the configuration error that prevents any booking, or nil
	Ready() error

	// Book creates the meeting and returns a link or identifier the agent can read back
	Book(ctx context.Context, req Request, at Instant) (string, error)
}

// UnavailableProvider stands in when capability resolution failed, so every
// booking reports the configuration error for that call only.
type UnavailableProvider struct {
	Err error
}

func (u *UnavailableProvider) Name() string {
	return "none"
}

func (u *UnavailableProvider) Ready() error {
	if u.Err == nil {
		return ErrNoProviderConfigured
	}
	return u.Err
}

func (u *UnavailableProvider) Book(_ context.Context, _ Request, _ Instant) (string, error) {
	return "", u.Ready()
}
