package doorpasses

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"

	"go.doorpasses.io/sdk/pkg/auth"
)

func TestCreateCallbackHandler(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	secret := auth.Secret("cb-secret")
	mockClock := clock.NewMock()
	mockClock.Set(time.Unix(1700000000, 0))

	sdk, err := NewSDK("acct_7c2e", secret, WithClock(mockClock), WithFreshnessTolerance(300))
	c.Assert(err, qt.IsNil)

	var gotType string
	var gotData map[string]any
	invocations := 0
	logger := zerolog.Nop()
	handler := sdk.CreateCallbackHandler(&logger, func(ctx context.Context, eventType string, data map[string]any) error {
		invocations++
		gotType = eventType
		gotData = data
		return nil
	})

	body, err := auth.EncodePayload(auth.Payload{
		"type": "pass.issued",
		"data": auth.Payload{"pass_id": "abc123"},
	})
	c.Assert(err, qt.IsNil)
	headers, err := auth.NewHeaders(secret, "acct_7c2e", mockClock.Now().Unix(), body)
	c.Assert(err, qt.IsNil)

	newRequest := func(body []byte, headers *auth.Headers) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "https://hooks.initech.example/doorpasses", bytes.NewReader(body))
		headers.Apply(req)
		return req
	}

	// An authentic event reaches the callback and is acknowledged.
	rec := httptest.NewRecorder()
	handler(rec, newRequest(body, headers))
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(rec.Body.String(), qt.Contains, `"code":"ok"`)
	c.Assert(invocations, qt.Equals, 1)
	c.Assert(gotType, qt.Equals, "pass.issued")
	c.Assert(gotData, qt.DeepEquals, map[string]any{"pass_id": "abc123"})

	// A tampered body never reaches the callback.
	tampered := bytes.Replace(body, []byte("abc123"), []byte("zzz999"), 1)
	rec = httptest.NewRecorder()
	handler(rec, newRequest(tampered, headers))
	c.Assert(rec.Code, qt.Equals, http.StatusUnauthorized)
	c.Assert(rec.Body.String(), qt.Contains, `"code":"unauthenticated"`)
	c.Assert(invocations, qt.Equals, 1)

	// A correctly signed body that is not an event document is a bad
	// request, not an authentication failure.
	raw := []byte("not-json")
	rawHeaders, err := auth.NewHeaders(secret, "acct_7c2e", mockClock.Now().Unix(), raw)
	c.Assert(err, qt.IsNil)
	rec = httptest.NewRecorder()
	handler(rec, newRequest(raw, rawHeaders))
	c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(rec.Body.String(), qt.Contains, `"code":"invalid_payload"`)

	// A failing callback reports 500 so the platform redelivers.
	failing := sdk.CreateCallbackHandler(&logger, func(ctx context.Context, eventType string, data map[string]any) error {
		return errors.New("downstream unavailable")
	})
	rec = httptest.NewRecorder()
	failing(rec, newRequest(body, headers))
	c.Assert(rec.Code, qt.Equals, http.StatusInternalServerError)
	c.Assert(rec.Body.String(), qt.Contains, `"code":"callback_failed"`)

	// Once the delivery is older than the freshness tolerance it is
	// rejected outright.
	mockClock.Add(301 * time.Second)
	rec = httptest.NewRecorder()
	handler(rec, newRequest(body, headers))
	c.Assert(rec.Code, qt.Equals, http.StatusUnauthorized)
	c.Assert(invocations, qt.Equals, 1)
}
