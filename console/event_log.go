package console

import (
	"context"
	"fmt"

	"go.doorpasses.io/sdk/console/types"
)

// ReadEventLog returns audit events recorded for the account, newest
// first, narrowed by the given filters.
func (c *Client) ReadEventLog(ctx context.Context, filters types.EventLogFilters) ([]map[string]any, error) {
	if err := filters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid event log filters: %w", err)
	}

	resp := []map[string]any{}
	if err := c.client.Get(ctx, "/v1/console/event-log", filters.Query(), &resp); err != nil {
		return nil, fmt.Errorf("unable to read event log: %w", err)
	}

	return resp, nil
}
