package provider

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/inference-gateway/voice-scheduling-agent/booking"
	"github.com/inference-gateway/voice-scheduling-agent/calcom"
	"github.com/inference-gateway/voice-scheduling-agent/config"
	"github.com/inference-gateway/voice-scheduling-agent/google"
	"github.com/inference-gateway/voice-scheduling-agent/resolver"
)

// New builds the booking provider for a resolved capability. When resolution
// failed, or the Google client cannot be constructed, the returned provider
// reports that error on every booking instead of failing start-up.
//
// ctx must live as long as the provider; Google token sources are bound to it.
func New(ctx context.Context, capability *resolver.Capability, resolveErr error, cfg *config.Config, logger *zap.Logger) booking.Provider {
	if resolveErr != nil {
		logger.Warn("no usable calendar provider, bookings will fail until configuration is fixed",
			zap.String("component", "provider-factory"),
			zap.Error(resolveErr))
		return &booking.UnavailableProvider{Err: resolveErr}
	}
	if capability == nil {
		return &booking.UnavailableProvider{Err: booking.ErrNoProviderConfigured}
	}

	switch capability.Kind {
	case resolver.KindCalCom:
		settings := *capability.CalCom
		client := calcom.NewClient(settings.BaseURL, settings.APIKey, cfg.App.ProviderTimeout, logger)
		return calcom.NewBooker(client, settings, logger)

	case resolver.KindGoogle:
		booker, err := newGoogleBooker(ctx, capability.Google, logger)
		if err != nil {
			logger.Error("failed to initialize google calendar client",
				zap.String("component", "provider-factory"),
				zap.String("authStrategy", string(capability.Google.Strategy)),
				zap.Error(err))
			return &booking.UnavailableProvider{Err: &booking.AuthInitError{
				Strategy: string(capability.Google.Strategy),
				Err:      err,
			}}
		}
		return booker

	default:
		return &booking.UnavailableProvider{Err: fmt.Errorf("unknown provider kind %q", capability.Kind)}
	}
}

func newGoogleBooker(ctx context.Context, auth *resolver.GoogleAuth, logger *zap.Logger) (*google.Booker, error) {
	opts, err := google.ClientOptions(ctx, auth)
	if err != nil {
		return nil, err
	}

	svc, err := google.NewCalendarService(ctx, logger, opts...)
	if err != nil {
		return nil, err
	}

	return google.NewBooker(svc, auth.CalendarID, logger), nil
}
