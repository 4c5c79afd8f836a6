package passes

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.doorpasses.io/sdk/passes/types"
)

// Issue creates a new access pass and returns the API's representation
// of it.
func (c *Client) Issue(ctx context.Context, params types.IssueAccessPassParams) (map[string]any, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid issue params: %w", err)
	}

	resp := map[string]any{}
	if err := c.client.Post(ctx, "/v1/access-passes", params, &resp); err != nil {
		return nil, fmt.Errorf("unable to issue access pass: %w", err)
	}

	return resp, nil
}

// Update modifies the access pass identified by passID. Zero-valued
// params fields are left unchanged.
func (c *Client) Update(ctx context.Context, passID string, params types.UpdateAccessPassParams) (map[string]any, error) {
	if passID == "" {
		return nil, errors.New("pass id is required")
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid update params: %w", err)
	}

	resp := map[string]any{}
	if err := c.client.Patch(ctx, fmt.Sprintf("/v1/access-passes/%s", url.PathEscape(passID)), params, &resp); err != nil {
		return nil, fmt.Errorf("unable to update access pass: %w", err)
	}

	return resp, nil
}

// List returns the account's access passes matching the given filters.
func (c *Client) List(ctx context.Context, params types.ListAccessPassesParams) ([]map[string]any, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid list params: %w", err)
	}

	resp := []map[string]any{}
	if err := c.client.Get(ctx, "/v1/access-passes", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("unable to list access passes: %w", err)
	}

	return resp, nil
}

// Get returns the access pass identified by passID.
func (c *Client) Get(ctx context.Context, passID string) (map[string]any, error) {
	if passID == "" {
		return nil, errors.New("pass id is required")
	}

	resp := map[string]any{}
	if err := c.client.Get(ctx, fmt.Sprintf("/v1/access-passes/%s", url.PathEscape(passID)), nil, &resp); err != nil {
		return nil, fmt.Errorf("unable to get access pass: %w", err)
	}

	return resp, nil
}
