// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package aesctr implements an AES-128 counter mode engine with a
// blocking and a completion-callback API.
//
// Buffers are transformed in place. The counter passed to every
// operation is consumed: on return (or on completion, for the
// asynchronous API) it holds the next unused counter value. Callers that
// want to restart from the same origin must pass a fresh copy.
package aesctr

import (
	"sync"

	"github.com/pion/aesctr/internal/aes128"
	"github.com/pion/aesctr/internal/ctr"
	"github.com/pion/logging"
)

const (
	// KeySize is the only supported key size in bytes.
	KeySize = aes128.KeySize
	// CounterSize is the size of a counter block in bytes.
	CounterSize = ctr.BlockSize
)

// Engine owns one AES-128 key schedule and runs counter mode transforms
// under it.
//
// Every operation captures the schedule that is installed when it is
// accepted. SetKey therefore never changes the key of an operation that
// is already running or queued; it only affects later submissions.
// The caller must not touch the buffer or counter of an asynchronous
// operation until its Callback has been invoked.
type Engine struct {
	keyMutex   sync.RWMutex
	schedule   *aes128.Schedule
	generation uint64

	queueMutex sync.Mutex
	queue      []*pendingOperation
	pending    int
	nextID     OperationID
	closing    bool

	wake   chan struct{}
	closed chan struct{}

	log logging.LeveledLogger
}

// NewEngine creates an Engine and starts its worker goroutine. Close
// must be called to stop it.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		wake:   make(chan struct{}, 1),
		closed: make(chan struct{}),
		log:    logging.NewDefaultLoggerFactory().NewLogger("aesctr"),
	}

	for _, o := range opts {
		if err := o(e); err != nil {
			return nil, err
		}
	}

	go e.run()

	return e, nil
}

// SetKey expands key and installs it, replacing any previous key. On
// ErrInvalidKeyLength the previous key stays installed.
func (e *Engine) SetKey(key []byte) error {
	if len(key) != KeySize {
		return ErrInvalidKeyLength
	}

	var k [KeySize]byte
	copy(k[:], key)
	schedule := aes128.Expand(&k)

	e.keyMutex.Lock()
	e.schedule = schedule
	e.generation++
	generation := e.generation
	e.keyMutex.Unlock()

	e.log.Debugf("key installed, generation %d", generation)
	return nil
}

// ClearKey removes the installed key. Transforms requested afterwards
// fail with ErrKeyNotSet until SetKey is called again.
func (e *Engine) ClearKey() {
	e.keyMutex.Lock()
	e.schedule = nil
	e.generation++
	generation := e.generation
	e.keyMutex.Unlock()

	e.log.Debugf("key cleared, generation %d", generation)
}

// EncryptCTR encrypts buf in place, blocking until done.
func (e *Engine) EncryptCTR(buf, counter []byte) error {
	return e.transform(OperationEncrypt, buf, counter)
}

// DecryptCTR decrypts buf in place, blocking until done. It is the same
// transform as EncryptCTR.
func (e *Engine) DecryptCTR(buf, counter []byte) error {
	return e.transform(OperationDecrypt, buf, counter)
}

func (e *Engine) transform(kind OperationKind, buf, counter []byte) error {
	schedule, _, err := e.snapshot(counter)
	if err != nil {
		return err
	}

	e.log.Tracef("%s %d bytes", kind, len(buf))
	process(schedule, buf, counter)
	return nil
}

// snapshot validates the arguments shared by every transform and returns
// the schedule the transform must run under.
func (e *Engine) snapshot(counter []byte) (*aes128.Schedule, uint64, error) {
	e.keyMutex.RLock()
	schedule, generation := e.schedule, e.generation
	e.keyMutex.RUnlock()

	if schedule == nil {
		return nil, 0, ErrKeyNotSet
	}
	if len(counter) != CounterSize {
		return nil, 0, ErrInvalidCounterLength
	}
	return schedule, generation, nil
}

// process runs counter mode on a working copy of counter and writes the
// advanced value back.
func process(schedule *aes128.Schedule, buf, counter []byte) {
	var block [CounterSize]byte
	copy(block[:], counter)
	ctr.XORKeyStream(schedule, &block, buf)
	copy(counter, block[:])
}
