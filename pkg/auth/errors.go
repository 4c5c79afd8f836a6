package auth

import (
	"errors"
)

var (
	ErrEncoding             = errors.New("payload cannot be canonically encoded")
	ErrInvalidSecret        = errors.New("shared secret is empty")
	ErrInvalidInput         = errors.New("invalid verification input")
	ErrNoAccountHeader      = errors.New("no account id header provided")
	ErrNoTimestampHeader    = errors.New("no timestamp header or invalid format provided")
	ErrNoSignatureHeader    = errors.New("no signature header provided")
	ErrAuthenticationFailed = errors.New("authentication failed")
)
