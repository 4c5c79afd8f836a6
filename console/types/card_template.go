package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Platform is the mobile wallet platform a card template targets.
type Platform string

const (
	PlatformApple  Platform = "apple"
	PlatformGoogle Platform = "google"
)

// Protocol is the card emulation protocol passes issued from a
// template use at the reader.
type Protocol string

const (
	ProtocolDesfire Protocol = "desfire"
	ProtocolSeos    Protocol = "seos"
)

// CardTemplateDesign is the visual appearance of cards issued from a
// template.
type CardTemplateDesign struct {
	BackgroundColor string `json:"background_color,omitempty"`
	LabelColor      string `json:"label_color,omitempty"`
	LogoText        string `json:"logo_text,omitempty"`
}

func (d CardTemplateDesign) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.BackgroundColor, is.HexColor),
		validation.Field(&d.LabelColor, is.HexColor),
	)
}

// SupportInfo is the support contact shown to pass holders.
type SupportInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	URL   string `json:"url,omitempty"`
}

func (s SupportInfo) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, is.EmailFormat),
		validation.Field(&s.URL, is.URL),
	)
}

// CreateCardTemplateParams are the parameters for creating a card
// template.
type CreateCardTemplateParams struct {
	Name        string              `json:"name"`
	Platform    Platform            `json:"platform"`
	Protocol    Protocol            `json:"protocol"`
	Design      *CardTemplateDesign `json:"design,omitempty"`
	SupportInfo *SupportInfo        `json:"support_info,omitempty"`
}

func (p CreateCardTemplateParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Platform, validation.Required, validation.In(PlatformApple, PlatformGoogle)),
		validation.Field(&p.Protocol, validation.Required, validation.In(ProtocolDesfire, ProtocolSeos)),
		validation.Field(&p.Design),
		validation.Field(&p.SupportInfo),
	)
}

// UpdateCardTemplateParams are the parameters for updating an existing
// card template. The platform and protocol of a template cannot change
// after creation.
type UpdateCardTemplateParams struct {
	Name        string              `json:"name,omitempty"`
	Design      *CardTemplateDesign `json:"design,omitempty"`
	SupportInfo *SupportInfo        `json:"support_info,omitempty"`
}

func (p UpdateCardTemplateParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Design),
		validation.Field(&p.SupportInfo),
	)
}
