package client

import (
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.doorpasses.io/sdk/pkg/auth"
)

// Config is the configuration for the client.
type Config struct {
	BaseURL            string        // The API host to use
	AccountID          string        // The account id sent in X-ACCT-ID
	SharedSecret       auth.Secret   // The secret requests are signed with
	Timeout            time.Duration // Per-request timeout (ignored when HTTPClient is set)
	FreshnessTolerance int64         // Max accepted timestamp skew in seconds when verifying
	Clock              clock.Clock   // The clock signing timestamps are read from
	Logger             zerolog.Logger
	HTTPClient         *http.Client // Overrides the built-in HTTP client when set
}
