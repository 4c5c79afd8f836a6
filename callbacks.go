package doorpasses

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventCallback is the callback function that will be invoked when a
// verified platform event is received.
type EventCallback = func(ctx context.Context, eventType string, data map[string]any) error

// CreateCallbackHandler returns a [http.HandlerFunc] that can be used
// to receive event callbacks from DoorPasses, such as pass issuance
// and door unlock events.
//
// DoorPasses sends a POST request with a JSON body of the form
//
//	{"type": "pass.issued", "data": { ... }}
//
// signed with the account's shared secret the same way SDK requests
// are signed. The handler verifies the signature and timestamp against
// the exact body bytes received and only then invokes callback with
// the decoded event.
//
// A 2xx response acknowledges the event. Any other status makes the
// platform redeliver it later, so callback errors are reported as 500.
func (s *SDK) CreateCallbackHandler(logger *zerolog.Logger, callback EventCallback) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			logger.Err(err).Msg("error while reading DoorPasses callback body")
			writeCallbackResponse(w, http.StatusBadRequest, "invalid_payload", "unable to read request body")
			return
		}

		if err := s.client.VerifyRequest(req, body); err != nil {
			logger.Err(err).Msg("error while verifying DoorPasses callback")
			writeCallbackResponse(w, http.StatusUnauthorized, "unauthenticated", "signature verification failed")
			return
		}

		var event struct {
			Type string         `json:"type"`
			Data map[string]any `json:"data"`
		}
		if err := json.Unmarshal(body, &event); err != nil {
			logger.Err(err).Msg("error while decoding DoorPasses callback")
			writeCallbackResponse(w, http.StatusBadRequest, "invalid_payload", "unable to decode event")
			return
		}

		if err := callback(req.Context(), event.Type, event.Data); err != nil {
			logger.Err(err).Str("event_type", event.Type).Msg("error while handling DoorPasses callback")
			writeCallbackResponse(w, http.StatusInternalServerError, "callback_failed", err.Error())
			return
		}

		writeCallbackResponse(w, http.StatusOK, "ok", "")
	}
}

// writeCallbackResponse writes the same {"code","message"} envelope
// the API itself uses for its responses.
func writeCallbackResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	data, _ := json.Marshal(map[string]string{
		"code":    code,
		"message": message,
	})
	_, _ = w.Write(data)
}
