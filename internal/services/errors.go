// Package services implements the application logic of the usage API: per
// message credit resolution and batch usage computation. This file defines
// the service-level error set.
//
// Translation into HTTP statuses happens at the handler layer; these types
// exist so callers can branch with errors.Is / errors.As instead of parsing
// messages. Upstream failures (lookup and batch fetch) keep their sentinels
// from the upstream package and pass through this layer unchanged.
package services

import (
	"errors"
	"fmt"
)

// ErrMalformedMessage is the class every MalformedMessageError unwraps to.
// Use errors.Is against this sentinel, or errors.As to recover the field.
var ErrMalformedMessage = errors.New("malformed message")

// MalformedMessageError reports a message missing one of its required
// fields. Field names the missing field as it appears on the wire.
type MalformedMessageError struct {
	Field string
}

func (e *MalformedMessageError) Error() string {
	return fmt.Sprintf("malformed message: missing required field %q", e.Field)
}

// Unwrap ties the error to the ErrMalformedMessage class.
func (e *MalformedMessageError) Unwrap() error { return ErrMalformedMessage }
