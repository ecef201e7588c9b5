package google

import (
	"context"
	"fmt"

	"google.golang.org/api/option"

	"github.com/inference-gateway/voice-scheduling-agent/resolver"
)

// ClientOptions turns a resolved auth strategy into API client options. ctx
// scopes the token source and must outlive individual requests.
func ClientOptions(ctx context.Context, auth *resolver.GoogleAuth) ([]option.ClientOption, error) {
	switch auth.Strategy {
	case resolver.StrategyEnvKeyPair, resolver.StrategyEnvJSON:
		if auth.JWT == nil {
			return nil, fmt.Errorf("strategy %s resolved without a JWT config", auth.Strategy)
		}
		return []option.ClientOption{option.WithTokenSource(auth.JWT.TokenSource(ctx))}, nil
	case resolver.StrategyApplicationDefault:
		// If only GOOGLE_APPLICATION_CREDENTIALS is set the user is most likely mounting a credentials file directly
		return []option.ClientOption{option.WithCredentialsFile(auth.CredentialsPath)}, nil
	default:
		return nil, fmt.Errorf("unknown credentials strategy: %s", auth.Strategy)
	}
}
