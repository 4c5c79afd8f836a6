package types

import (
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AccessPassState is the lifecycle state of an access pass.
type AccessPassState string

const (
	StateIssued    AccessPassState = "issued"
	StateActive    AccessPassState = "active"
	StateSuspended AccessPassState = "suspended"
	StateRevoked   AccessPassState = "revoked"
	StateExpired   AccessPassState = "expired"
)

// Classification is the category of holder a pass is issued to.
type Classification string

const (
	ClassificationEmployee   Classification = "employee"
	ClassificationContractor Classification = "contractor"
	ClassificationVisitor    Classification = "visitor"
	ClassificationTemporary  Classification = "temporary"
)

// IssueAccessPassParams are the parameters for issuing a new access
// pass. Dates are RFC 3339 timestamps.
type IssueAccessPassParams struct {
	CardTemplateID string         `json:"card_template_id"`
	CardNumber     string         `json:"card_number"`
	FullName       string         `json:"full_name"`
	StartDate      string         `json:"start_date"`
	ExpirationDate string         `json:"expiration_date"`
	Classification Classification `json:"classification,omitempty"`
	Email          string         `json:"email,omitempty"`
	PhoneNumber    string         `json:"phone_number,omitempty"`
	EmployeeID     string         `json:"employee_id,omitempty"`
}

func (p IssueAccessPassParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CardTemplateID, validation.Required),
		validation.Field(&p.CardNumber, validation.Required),
		validation.Field(&p.FullName, validation.Required),
		validation.Field(&p.StartDate, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&p.ExpirationDate, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&p.Classification, validation.In(ClassificationEmployee, ClassificationContractor, ClassificationVisitor, ClassificationTemporary)),
		validation.Field(&p.Email, is.EmailFormat),
	)
}

// UpdateAccessPassParams are the parameters for updating an existing
// access pass. Zero-valued fields are left unchanged by the API.
type UpdateAccessPassParams struct {
	FullName       string          `json:"full_name,omitempty"`
	Classification Classification  `json:"classification,omitempty"`
	State          AccessPassState `json:"state,omitempty"`
	StartDate      string          `json:"start_date,omitempty"`
	ExpirationDate string          `json:"expiration_date,omitempty"`
	Email          string          `json:"email,omitempty"`
	PhoneNumber    string          `json:"phone_number,omitempty"`
	EmployeeID     string          `json:"employee_id,omitempty"`
}

func (p UpdateAccessPassParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.State, validation.In(StateIssued, StateActive, StateSuspended, StateRevoked, StateExpired)),
		validation.Field(&p.Classification, validation.In(ClassificationEmployee, ClassificationContractor, ClassificationVisitor, ClassificationTemporary)),
		validation.Field(&p.StartDate, validation.Date(time.RFC3339)),
		validation.Field(&p.ExpirationDate, validation.Date(time.RFC3339)),
		validation.Field(&p.Email, is.EmailFormat),
	)
}

// ListAccessPassesParams filter the passes returned by List.
type ListAccessPassesParams struct {
	State          AccessPassState `json:"state,omitempty"`
	CardTemplateID string          `json:"card_template_id,omitempty"`
	Email          string          `json:"email,omitempty"`
	EmployeeID     string          `json:"employee_id,omitempty"`
}

func (p ListAccessPassesParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.State, validation.In(StateIssued, StateActive, StateSuspended, StateRevoked, StateExpired)),
		validation.Field(&p.Email, is.EmailFormat),
	)
}

// Query returns the filters as URL query parameters.
func (p ListAccessPassesParams) Query() url.Values {
	q := url.Values{}
	if p.State != "" {
		q.Set("state", string(p.State))
	}
	if p.CardTemplateID != "" {
		q.Set("card_template_id", p.CardTemplateID)
	}
	if p.Email != "" {
		q.Set("email", p.Email)
	}
	if p.EmployeeID != "" {
		q.Set("employee_id", p.EmployeeID)
	}
	return q
}
