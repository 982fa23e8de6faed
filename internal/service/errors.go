package service

import "errors"

// ValidationError rejects an operation because required input is missing.
// The reason is safe to show to the user. No partial result accompanies it.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ErrAssistantBusy is returned by ChatSession.Submit while a prior
// assistant response is still composing.
var ErrAssistantBusy = errors.New("assistant response still pending")
