// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesctr

import (
	"github.com/pion/logging"
)

// EngineOption configures an Engine at construction.
type EngineOption func(*Engine) error

// WithKey installs key before the Engine is returned.
func WithKey(key []byte) EngineOption {
	return func(e *Engine) error {
		return e.SetKey(key)
	}
}

// WithLoggerFactory sets the factory the Engine creates its logger from.
// The default is logging.NewDefaultLoggerFactory().
func WithLoggerFactory(f logging.LoggerFactory) EngineOption {
	return func(e *Engine) error {
		e.log = f.NewLogger("aesctr")
		return nil
	}
}

// WithQueueSize preallocates room for n pending asynchronous operations.
// The queue grows past n as needed, so submission never blocks.
func WithQueueSize(n int) EngineOption {
	return func(e *Engine) error {
		if n < 0 {
			return errInvalidQueueSize
		}
		e.queue = make([]*pendingOperation, 0, n)
		return nil
	}
}
