package domain

import "errors"

var (
	ErrSessionExpired   = errors.New("session expired")
	ErrNoCredential     = errors.New("no credential stored")
	ErrUnknownModule    = errors.New("unknown module")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrMalformedPayload = errors.New("malformed payload")
)
