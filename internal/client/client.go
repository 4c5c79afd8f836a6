package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"go.doorpasses.io/sdk/internal/apierr"
	"go.doorpasses.io/sdk/pkg/auth"
)

const userAgent = "doorpasses-go-sdk/1.0.0"

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	// jsonNumber keeps integers as json.Number on the way into a
	// payload, so canonical encoding preserves their exact digits
	// instead of routing them through float64.
	jsonNumber = jsoniter.Config{UseNumber: true}.Froze()
)

// Client is the underlying raw client for communicating with the
// DoorPasses API.
//
// It is injected into each resource struct by the main [doorpasses]
// package. Every request it sends carries the authentication headers
// computed over the exact body bytes put on the wire.
type Client struct {
	cfg  *Config
	http *http.Client
}

func New(cfg *Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	cfg.Logger.Debug().
		Str("base_url", cfg.BaseURL).
		Str("account_id", cfg.AccountID).
		Str("secret_fingerprint", cfg.SharedSecret.Fingerprint()).
		Msg("doorpasses client configured")

	return &Client{cfg: cfg, http: httpClient}
}

// Post performs a signed POST request to the specified path.
func (c *Client) Post(ctx context.Context, path string, payload any, response any) error {
	return c.do(ctx, http.MethodPost, path, nil, payload, response)
}

// Patch performs a signed PATCH request to the specified path.
func (c *Client) Patch(ctx context.Context, path string, payload any, response any) error {
	return c.do(ctx, http.MethodPatch, path, nil, payload, response)
}

// Get performs a signed bodyless GET request to the specified path.
func (c *Client) Get(ctx context.Context, path string, query url.Values, response any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, response)
}

// Delete performs a signed bodyless DELETE request to the specified path.
func (c *Client) Delete(ctx context.Context, path string, response any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, response)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, response any) error {
	// Encode the body into its canonical form. The same bytes are
	// signed and sent; a bodyless request signs zero bytes.
	var body []byte
	if payload != nil {
		p, err := toPayload(payload)
		if err != nil {
			return err
		}
		body, err = auth.EncodePayload(p)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	// Sign the request
	timestamp := c.cfg.Clock.Now().Unix()
	headers, err := auth.NewHeaders(c.cfg.SharedSecret, c.cfg.AccountID, timestamp, body)
	if err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}

	// Create the request
	target := c.cfg.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set the headers
	requestID := uuid.NewString()
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("X-Request-ID", requestID)
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	headers.Apply(req)

	// Send the request
	start := c.cfg.Clock.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.cfg.Logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", c.cfg.Clock.Since(start)).
		Msg("doorpasses api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apierr.Parse(resp.StatusCode, requestID, respBody)
	}

	// Decode the response
	if response == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// VerifyRequest authenticates an inbound request, such as an event
// callback from the platform, against the configured secret, clock and
// freshness tolerance. body must be the exact bytes read from the
// request.
func (c *Client) VerifyRequest(req *http.Request, body []byte) error {
	return auth.VerifyRequest(c.cfg.SharedSecret, req, body, c.cfg.Clock.Now().Unix(), c.cfg.FreshnessTolerance)
}

// toPayload converts a params struct into an [auth.Payload] via its
// JSON form. Maps pass through untouched.
func toPayload(v any) (auth.Payload, error) {
	switch t := v.(type) {
	case auth.Payload:
		return t, nil
	case map[string]any:
		return t, nil
	}

	raw, err := jsonNumber.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	var p auth.Payload
	if err := jsonNumber.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return p, nil
}
