// Package errors provides standardized error handling for the twitchy
// application. It defines the error kinds the navigation engine
// distinguishes and helper functions for consistent creation, wrapping
// and checking.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Engine error kinds
	NotPlayable
	ChannelOffline
	UnknownKeycode
	// Keybind registry error kinds
	KeybindExists
	KeybindNotFound
	// Collaborator error kinds
	FetchFailed
	MenuFailed
	PlayerFailed
	// Config error kinds
	InvalidConfig
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// New creates a new error with a message and kind
func New(kind ErrorKind, msg string) error {
	return &ApplicationError{msg: msg, kind: kind}
}

// Newf creates a new error with a formatted message and kind
func Newf(kind ErrorKind, format string, args ...interface{}) error {
	return &ApplicationError{msg: fmt.Sprintf(format, args...), kind: kind}
}

// Wrap wraps an existing error with additional context and a kind
func Wrap(err error, kind ErrorKind, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err, kind: kind}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, kind ErrorKind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: fmt.Sprintf(format, args...), err: err, kind: kind}
}

// KindOf returns the kind of the first ApplicationError in err's chain,
// or Unknown if there is none.
func KindOf(err error) ErrorKind {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

// IsKind checks whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind() == kind
	}
	return false
}

// IsNotPlayable checks if the error marks a confirmed item that cannot
// be played
func IsNotPlayable(err error) bool {
	return IsKind(err, NotPlayable)
}

// IsChannelOffline checks if the error marks a live-only action invoked
// against an offline channel
func IsChannelOffline(err error) bool {
	return IsKind(err, ChannelOffline)
}

// IsUnknownKeycode checks if the error marks a menu result code with no
// registered keybind
func IsUnknownKeycode(err error) bool {
	return IsKind(err, UnknownKeycode)
}

// IsKeybindNotFound checks if the error marks a registry lookup miss
func IsKeybindNotFound(err error) bool {
	return IsKind(err, KeybindNotFound)
}

// IsFetchFailed checks if the error comes from the content fetcher
func IsFetchFailed(err error) bool {
	return IsKind(err, FetchFailed)
}
