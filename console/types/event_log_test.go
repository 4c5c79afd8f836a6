package types

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEventLogFiltersValidate(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	c.Assert(EventLogFilters{}.Validate(), qt.IsNil)
	c.Assert(EventLogFilters{From: "2024-04-01T00:00:00Z", To: "2024-05-01T00:00:00Z"}.Validate(), qt.IsNil)
	c.Assert(EventLogFilters{From: "2024-04-01"}.Validate(), qt.IsNotNil)
	c.Assert(EventLogFilters{To: "whenever"}.Validate(), qt.IsNotNil)
}

func TestEventLogFiltersQuery(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	q := EventLogFilters{
		PassID:         "pass_9f3",
		CardTemplateID: "ct_8a1",
		EventType:      "door.unlocked",
		From:           "2024-04-01T00:00:00Z",
		To:             "2024-05-01T00:00:00Z",
	}.Query()
	c.Assert(q.Get("pass_id"), qt.Equals, "pass_9f3")
	c.Assert(q.Get("card_template_id"), qt.Equals, "ct_8a1")
	c.Assert(q.Get("event_type"), qt.Equals, "door.unlocked")
	c.Assert(q.Get("from"), qt.Equals, "2024-04-01T00:00:00Z")
	c.Assert(q.Get("to"), qt.Equals, "2024-05-01T00:00:00Z")

	c.Assert(EventLogFilters{}.Query(), qt.HasLen, 0)
}
