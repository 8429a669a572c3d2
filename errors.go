// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesctr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeyLength is returned when a key is not exactly 16 bytes.
	ErrInvalidKeyLength = errors.New("aesctr: key must be 16 bytes")
	// ErrKeyNotSet is returned when a transform is requested before a key is installed.
	ErrKeyNotSet = errors.New("aesctr: key not set")
	// ErrInvalidCounterLength is returned when a counter block is not exactly 16 bytes.
	ErrInvalidCounterLength = errors.New("aesctr: counter must be 16 bytes")
	// ErrSubmissionRejected wraps every asynchronous submission that failed validation.
	ErrSubmissionRejected = errors.New("aesctr: submission rejected")
	// ErrEngineClosed is returned for asynchronous submissions after Close.
	ErrEngineClosed = errors.New("aesctr: engine closed")

	errNilCallback      = errors.New("aesctr: completion callback is nil")
	errInvalidQueueSize = errors.New("aesctr: queue size must not be negative")
)

type errorRejected struct {
	Kind OperationKind
	Err  error
}

func (e *errorRejected) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Kind, ErrSubmissionRejected, e.Err)
}

func (e *errorRejected) Unwrap() []error {
	return []error{ErrSubmissionRejected, e.Err}
}

// Status codes returned by ReturnCode.
const (
	codeSuccess = 0
	codeFail    = -1
	codeOff     = -4
	codeReserve = -5
	codeInvalid = -6
	codeSize    = -7
)

// ReturnCode maps an error returned by the Engine to the integer status
// convention of a syscall-style driver: 0 on success, a negative code
// otherwise.
func ReturnCode(err error) int {
	switch {
	case err == nil:
		return codeSuccess
	case errors.Is(err, ErrEngineClosed):
		return codeOff
	case errors.Is(err, ErrKeyNotSet):
		return codeReserve
	case errors.Is(err, ErrInvalidKeyLength), errors.Is(err, ErrInvalidCounterLength):
		return codeSize
	case errors.Is(err, errNilCallback):
		return codeInvalid
	default:
		return codeFail
	}
}
