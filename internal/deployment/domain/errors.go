package domain

import "errors"

var (
	ErrUnknownPrompt   = errors.New("unknown prompt kind")
	ErrProviderFailure = errors.New("ai provider call failed")
)
