package doorpasses

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.doorpasses.io/sdk/console"
	"go.doorpasses.io/sdk/internal/client"
	"go.doorpasses.io/sdk/passes"
	"go.doorpasses.io/sdk/pkg/auth"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.doorpasses.io"

	// DefaultTimeout is the per-request timeout applied when no
	// override is given.
	DefaultTimeout = 30 * time.Second

	// DefaultFreshnessTolerance is the accepted timestamp skew, in
	// seconds, applied when no override is given.
	DefaultFreshnessTolerance = 300
)

// NewSDK creates a new SDK authenticating as the given account with
// the specified options.
func NewSDK(accountID string, sharedSecret auth.Secret, options ...Option) (*SDK, error) {
	if accountID == "" || sharedSecret == "" {
		return nil, errors.New("accountId and sharedSecret are required")
	}

	// Create the raw client
	cfg := &client.Config{
		BaseURL:            DefaultBaseURL,
		AccountID:          accountID,
		SharedSecret:       sharedSecret,
		Timeout:            DefaultTimeout,
		FreshnessTolerance: DefaultFreshnessTolerance,
		Clock:              clock.New(),
		Logger:             zerolog.Nop(),
	}
	for _, option := range options {
		option(cfg)
	}
	rawClient := client.New(cfg)

	// Now create the SDK struct
	return &SDK{
		client:       rawClient,
		AccessPasses: passes.NewClient(rawClient),
		Console:      console.NewClient(rawClient),
	}, nil
}

// SDK is the main client for the DoorPasses access-control platform.
type SDK struct {
	client *client.Client

	// AccessPasses is the client for issuing and managing digital
	// access passes.
	AccessPasses *passes.Client

	// Console is the client for the console APIs available to
	// Enterprise accounts.
	Console *console.Client
}

// Health checks connectivity with the API and returns the service
// status document.
func (s *SDK) Health(ctx context.Context) (map[string]any, error) {
	resp := map[string]any{}
	if err := s.client.Get(ctx, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
