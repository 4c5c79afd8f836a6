package console

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.doorpasses.io/sdk/console/types"
)

// CreateCardTemplate creates a new card template that access passes
// can be issued from.
func (c *Client) CreateCardTemplate(ctx context.Context, params types.CreateCardTemplateParams) (map[string]any, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid card template params: %w", err)
	}

	resp := map[string]any{}
	if err := c.client.Post(ctx, "/v1/console/card-templates", params, &resp); err != nil {
		return nil, fmt.Errorf("unable to create card template: %w", err)
	}

	return resp, nil
}

// UpdateCardTemplate modifies the card template identified by
// templateID. Zero-valued params fields are left unchanged.
func (c *Client) UpdateCardTemplate(ctx context.Context, templateID string, params types.UpdateCardTemplateParams) (map[string]any, error) {
	if templateID == "" {
		return nil, errors.New("card template id is required")
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid card template params: %w", err)
	}

	resp := map[string]any{}
	if err := c.client.Patch(ctx, fmt.Sprintf("/v1/console/card-templates/%s", url.PathEscape(templateID)), params, &resp); err != nil {
		return nil, fmt.Errorf("unable to update card template: %w", err)
	}

	return resp, nil
}

// GetCardTemplate returns the card template identified by templateID.
func (c *Client) GetCardTemplate(ctx context.Context, templateID string) (map[string]any, error) {
	if templateID == "" {
		return nil, errors.New("card template id is required")
	}

	resp := map[string]any{}
	if err := c.client.Get(ctx, fmt.Sprintf("/v1/console/card-templates/%s", url.PathEscape(templateID)), nil, &resp); err != nil {
		return nil, fmt.Errorf("unable to get card template: %w", err)
	}

	return resp, nil
}

// DeleteCardTemplate removes the card template identified by
// templateID. Passes already issued from it are unaffected.
func (c *Client) DeleteCardTemplate(ctx context.Context, templateID string) error {
	if templateID == "" {
		return errors.New("card template id is required")
	}

	if err := c.client.Delete(ctx, fmt.Sprintf("/v1/console/card-templates/%s", url.PathEscape(templateID)), nil); err != nil {
		return fmt.Errorf("unable to delete card template: %w", err)
	}

	return nil
}
