package console

import (
	"go.doorpasses.io/sdk/internal/client"
)

// Client is the SDK for the DoorPasses console APIs available to
// Enterprise accounts: card template management and the audit event
// log.
type Client struct {
	client *client.Client
}

func NewClient(client *client.Client) *Client {
	return &Client{client}
}
