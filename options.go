package doorpasses

import (
	"net/http"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"go.doorpasses.io/sdk/internal/client"
)

// Option is a function that can be passed to NewSDK to configure the
// SDK.
type Option func(config *client.Config)

// WithBaseURL configures the SDK to use the specified API endpoint,
// overriding [DefaultBaseURL]. A trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(config *client.Config) {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout configures the per-request timeout, overriding
// [DefaultTimeout]. A zero timeout disables the limit.
func WithTimeout(timeout time.Duration) Option {
	return func(config *client.Config) {
		config.Timeout = timeout
	}
}

// WithFreshnessTolerance configures the accepted clock skew in seconds
// used when verifying timestamped signatures, overriding
// [DefaultFreshnessTolerance].
func WithFreshnessTolerance(seconds int64) Option {
	return func(config *client.Config) {
		config.FreshnessTolerance = seconds
	}
}

// WithClock configures the SDK to read signing timestamps from the
// specified clock.
//
// This is useful for testing with a mocked clock, if not
// specified a real clock will be used.
func WithClock(clock clock.Clock) Option {
	return func(config *client.Config) {
		config.Clock = clock
	}
}

// WithLogger configures the SDK to emit debug logs through the given
// logger. By default logging is disabled. Secrets never appear in log
// output.
func WithLogger(logger zerolog.Logger) Option {
	return func(config *client.Config) {
		config.Logger = logger
	}
}

// WithHTTPClient configures the SDK to send requests through the given
// HTTP client instead of the built-in one. The [WithTimeout] setting
// does not apply to a custom client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(config *client.Config) {
		config.HTTPClient = httpClient
	}
}
