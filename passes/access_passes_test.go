package passes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"

	"go.doorpasses.io/sdk/internal/client"
	"go.doorpasses.io/sdk/passes/types"
	"go.doorpasses.io/sdk/pkg/auth"
)

const testSecret = auth.Secret("passes-secret")

type recorded struct {
	requests  int
	method    string
	path      string
	query     url.Values
	body      string
	verifyErr error
}

// newTestClient starts a server that authenticates requests the same
// way the real API does and returns a resource client pointed at it.
func newTestClient(c *qt.C, status int, responseBody string) (*Client, *recorded) {
	mockClock := clock.NewMock()
	mockClock.Set(time.Unix(1700000000, 0))

	got := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got.requests++
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.Query()
		got.body = string(body)
		got.verifyErr = auth.VerifyRequest(testSecret, r, body, mockClock.Now().Unix(), 300)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, responseBody)
	}))
	c.Cleanup(server.Close)

	return NewClient(client.New(&client.Config{
		BaseURL:            server.URL,
		AccountID:          "acct_7c2e",
		SharedSecret:       testSecret,
		FreshnessTolerance: 300,
		Clock:              mockClock,
		Logger:             zerolog.Nop(),
	})), got
}

func TestIssue(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	passesClient, got := newTestClient(c, http.StatusOK, `{"id":"pass_9f3","state":"issued"}`)

	pass, err := passesClient.Issue(context.Background(), types.IssueAccessPassParams{
		CardTemplateID: "ct_lobby",
		CardNumber:     "12345",
		FullName:       "Ada Lovelace",
		StartDate:      "2025-11-01T00:00:00Z",
		ExpirationDate: "2026-11-01T00:00:00Z",
		Classification: types.ClassificationEmployee,
	})
	c.Assert(err, qt.IsNil)

	c.Assert(got.verifyErr, qt.IsNil, qt.Commentf("server-side verification failed"))
	c.Assert(got.method, qt.Equals, http.MethodPost)
	c.Assert(got.path, qt.Equals, "/v1/access-passes")
	c.Assert(got.body, qt.Equals, `{"card_number":"12345","card_template_id":"ct_lobby","classification":"employee","expiration_date":"2026-11-01T00:00:00Z","full_name":"Ada Lovelace","start_date":"2025-11-01T00:00:00Z"}`)
	c.Assert(pass["id"], qt.Equals, "pass_9f3")
	c.Assert(pass["state"], qt.Equals, "issued")
}

func TestIssueInvalidParams(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	passesClient, got := newTestClient(c, http.StatusOK, `{}`)

	_, err := passesClient.Issue(context.Background(), types.IssueAccessPassParams{
		CardNumber: "12345",
	})
	c.Assert(err, qt.ErrorMatches, "invalid issue params: .*")
	c.Assert(got.requests, qt.Equals, 0, qt.Commentf("invalid params must not reach the wire"))
}

func TestUpdate(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	passesClient, got := newTestClient(c, http.StatusOK, `{"id":"pass 9","state":"suspended"}`)

	pass, err := passesClient.Update(context.Background(), "pass 9", types.UpdateAccessPassParams{
		State: types.StateSuspended,
	})
	c.Assert(err, qt.IsNil)

	c.Assert(got.verifyErr, qt.IsNil)
	c.Assert(got.method, qt.Equals, http.MethodPatch)
	c.Assert(got.path, qt.Equals, "/v1/access-passes/pass 9", qt.Commentf("pass id was not escaped into the path"))
	c.Assert(got.body, qt.Equals, `{"state":"suspended"}`)
	c.Assert(pass["state"], qt.Equals, "suspended")
}

func TestUpdateRequiresPassID(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	passesClient, got := newTestClient(c, http.StatusOK, `{}`)

	_, err := passesClient.Update(context.Background(), "", types.UpdateAccessPassParams{})
	c.Assert(err, qt.ErrorMatches, "pass id is required")
	c.Assert(got.requests, qt.Equals, 0)
}

func TestList(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	passesClient, got := newTestClient(c, http.StatusOK, `[{"id":"pass_1"},{"id":"pass_2"}]`)

	result, err := passesClient.List(context.Background(), types.ListAccessPassesParams{
		State: types.StateActive,
		Email: "ada@initech.example",
	})
	c.Assert(err, qt.IsNil)

	c.Assert(got.verifyErr, qt.IsNil, qt.Commentf("bodyless request did not verify"))
	c.Assert(got.method, qt.Equals, http.MethodGet)
	c.Assert(got.body, qt.Equals, "")
	c.Assert(got.query.Get("state"), qt.Equals, "active")
	c.Assert(got.query.Get("email"), qt.Equals, "ada@initech.example")
	c.Assert(result, qt.HasLen, 2)
	c.Assert(result[0]["id"], qt.Equals, "pass_1")
}

func TestListInvalidState(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	passesClient, got := newTestClient(c, http.StatusOK, `[]`)

	_, err := passesClient.List(context.Background(), types.ListAccessPassesParams{State: "misplaced"})
	c.Assert(err, qt.ErrorMatches, "invalid list params: .*")
	c.Assert(got.requests, qt.Equals, 0)
}

func TestGet(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	passesClient, got := newTestClient(c, http.StatusOK, `{"id":"pass_9f3","state":"active"}`)

	pass, err := passesClient.Get(context.Background(), "pass_9f3")
	c.Assert(err, qt.IsNil)

	c.Assert(got.verifyErr, qt.IsNil)
	c.Assert(got.method, qt.Equals, http.MethodGet)
	c.Assert(got.path, qt.Equals, "/v1/access-passes/pass_9f3")
	c.Assert(pass["state"], qt.Equals, "active")

	_, err = passesClient.Get(context.Background(), "")
	c.Assert(err, qt.ErrorMatches, "pass id is required")
}
