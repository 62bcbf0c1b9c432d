package clients

import "errors"

// Configuration errors returned by the registry.
var (
	ErrClientNotFound    = errors.New("client not registered")
	ErrDuplicateClient   = errors.New("client already registered")
	ErrInvalidDefinition = errors.New("invalid client definition")
)
