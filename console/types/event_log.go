package types

import (
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EventLogFilters narrow the events returned by ReadEventLog.
type EventLogFilters struct {
	PassID         string `json:"pass_id,omitempty"`
	CardTemplateID string `json:"card_template_id,omitempty"`
	EventType      string `json:"event_type,omitempty"`
	From           string `json:"from,omitempty"` // RFC 3339, inclusive
	To             string `json:"to,omitempty"`   // RFC 3339, exclusive
}

func (f EventLogFilters) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.From, validation.Date(time.RFC3339)),
		validation.Field(&f.To, validation.Date(time.RFC3339)),
	)
}

// Query returns the filters as URL query parameters.
func (f EventLogFilters) Query() url.Values {
	q := url.Values{}
	if f.PassID != "" {
		q.Set("pass_id", f.PassID)
	}
	if f.CardTemplateID != "" {
		q.Set("card_template_id", f.CardTemplateID)
	}
	if f.EventType != "" {
		q.Set("event_type", f.EventType)
	}
	if f.From != "" {
		q.Set("from", f.From)
	}
	if f.To != "" {
		q.Set("to", f.To)
	}
	return q
}
