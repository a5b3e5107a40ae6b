package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAuthentication         = errors.New("authentication failed")
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrValidation             = errors.New("invalid configuration")
	ErrUnsupportedPayload     = errors.New("unsupported payload")
	ErrUnknownTransport       = errors.New("unknown transport")
	ErrRemoteProcessingFailed = errors.New("remote processing failed")
	ErrNoFlagsFound           = errors.New("no status flags found")
	ErrPollTimeout            = errors.New("timed out waiting for status flags")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrSecretNotFound         = errors.New("secret not found")
)

// ValidationError lists every offending field found in one validation pass.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "missing required fields"
	}
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", ErrValidation, reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, reason, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type RemoteProcessingError struct {
	Flags []StatusFlag
}

func (e *RemoteProcessingError) Error() string {
	entities := make([]string, 0, len(e.Flags))
	for _, flag := range e.Flags {
		entities = append(entities, flag.EntityID)
	}
	return fmt.Sprintf("%s: %d flag(s) in error state for entities [%s]", ErrRemoteProcessingFailed, len(e.Flags), strings.Join(entities, ", "))
}

func (e *RemoteProcessingError) Unwrap() error {
	return ErrRemoteProcessingFailed
}

type AuthenticationError struct {
	Strategy LoginStrategy
	Err      error
}

func (e *AuthenticationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s login", ErrAuthentication, e.Strategy)
	}
	return fmt.Sprintf("%s: %s login: %v", ErrAuthentication, e.Strategy, e.Err)
}

func (e *AuthenticationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAuthentication}
	}
	return []error{ErrAuthentication, e.Err}
}
