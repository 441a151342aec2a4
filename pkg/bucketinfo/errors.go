// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package bucketinfo

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is; use errors.As with the concrete
// types below for the offending field or argument.
var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDecode          = errors.New("decode error")
)

// ValidationError reports a required field that is missing or a structured
// field that does not have the expected shape.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InvalidArgumentError reports a setter argument outside its accepted domain.
type InvalidArgumentError struct {
	Argument string
	Value    string
	Err      error
}

func (e *InvalidArgumentError) Error() string {
	msg := fmt.Sprintf("%s: %s=%q", ErrInvalidArgument, e.Argument, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// DecodeError reports input that is not well-formed JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDecode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func missing(field string) error {
	return &ValidationError{Field: field, Reason: "required"}
}

func malformed(field string, err error) error {
	return &ValidationError{Field: field, Reason: "malformed", Err: err}
}
