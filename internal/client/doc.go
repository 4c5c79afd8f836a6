// Package client provides a generic signed client for communicating
// with the DoorPasses API. Every outgoing request is canonically
// encoded and signed, so the server can verify both the sender and
// the integrity of the exact bytes received.
package client
