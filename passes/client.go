package passes

import (
	"go.doorpasses.io/sdk/internal/client"
)

// Client is the SDK for issuing and managing digital access passes.
type Client struct {
	client *client.Client
}

func NewClient(client *client.Client) *Client {
	return &Client{client}
}
