package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrEmptyHistory    = errors.New("utterance history is empty")
	ErrOracle          = errors.New("oracle request failed")
	ErrEventNotFound   = errors.New("event not found")
	ErrIncompleteEvent = errors.New("event is missing required fields")
)
